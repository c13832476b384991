package dto

import "github.com/shopspring/decimal"

type LedgerTransactionResponse struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	CounterpartyID string          `json:"counterparty_id"`
	BatchID        string          `json:"batch_id,omitempty"`
	Quantity       int             `json:"quantity"`
	Value          decimal.Decimal `json:"value"`
	CreatedAt      string          `json:"created_at"`
}

// LedgerHistoryRow is one row of the reconstructed stock history for a
// product, newest first. PreviousStock is the balance before the movement,
// CurrentStock after it.
type LedgerHistoryRow struct {
	TransactionID string `json:"transaction_id"`
	Date          string `json:"date"`
	// Kind is "in" for purchases and "out" for sales.
	Kind          string `json:"kind"`
	Description   string `json:"description"`
	Quantity      int    `json:"quantity"`
	PreviousStock int    `json:"previous_stock"`
	CurrentStock  int    `json:"current_stock"`
}
