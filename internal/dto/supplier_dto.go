package dto

type SaveSupplierRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"required"`
	Address string `json:"address"`
}

type SupplierFilter struct {
	Name string `form:"name"`
}

type SupplierResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Address   string `json:"address,omitempty"`
	CreatedAt string `json:"created_at"`
}
