package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required,gt=0"`
	Description string          `json:"description"`
	SupplierID  string          `json:"supplier_id" validate:"required,uuid"`
	Image       *string         `json:"image"`
}

type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required,gt=0"`
	Description string          `json:"description"`
	SupplierID  string          `json:"supplier_id" validate:"required,uuid"`
	Image       *string         `json:"image"`
}

type SetProductActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// ProductFilter narrows product listings.
// Active: "false" = inactive only, "all" = everything, default = active only.
// PriceSort: "asc" | "desc" | "" (no price ordering, name order instead).
type ProductFilter struct {
	Name       string `form:"name"`
	SupplierID string `form:"supplier_id"`
	Active     string `form:"active"`
	PriceSort  string `form:"price_sort"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	// ProfitMarginPct is (price - cost) / cost * 100; nil while the product
	// has no recorded acquisition cost.
	ProfitMarginPct *decimal.Decimal `json:"profit_margin_pct,omitempty"`
	Stock           int              `json:"stock"`
	SupplierID      string           `json:"supplier_id,omitempty"`
	Image           *string          `json:"image,omitempty"`
	Active          bool             `json:"active"`
	CreatedAt       string           `json:"created_at"`
}

// PriceCheckResponse is the payload of the public price lookup endpoint.
type PriceCheckResponse struct {
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	StockAvailable int             `json:"stock_available"`
}
