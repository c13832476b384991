package dto

type SaveCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"required"`
	Address string `json:"address"`
	TaxID   string `json:"tax_id" validate:"required"`
}

type CustomerFilter struct {
	Name  string `form:"name"`
	TaxID string `form:"tax_id"`
}

type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Address   string `json:"address,omitempty"`
	TaxID     string `json:"tax_id"`
	CreatedAt string `json:"created_at"`
}
