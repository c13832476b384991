package dto

import "github.com/shopspring/decimal"

// StockEntryLine is one pending line of a stock-entry batch: how many units
// of which product were received and what was paid for the whole line.
type StockEntryLine struct {
	ProductName string          `json:"product_name" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	TotalPaid   decimal.Decimal `json:"total_paid" validate:"required,gt=0"`
}

type StockEntryRequest struct {
	// Supplier is the free-text supplier name; it must resolve to a known
	// supplier (case-insensitive exact match) or the whole batch is rejected.
	Supplier string           `json:"supplier" validate:"required"`
	Entries  []StockEntryLine `json:"entries" validate:"required,min=1,dive"`
}

type StockEntryResponse struct {
	Message        string   `json:"message"`
	TransactionIDs []string `json:"transaction_ids"`
	// CreatedProducts lists the names of products that did not exist before
	// this batch and were created with zero stock.
	CreatedProducts []string `json:"created_products,omitempty"`
}
