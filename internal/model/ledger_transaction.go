package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerTransaction records a single inventory movement. Append-only: rows are
// never updated or deleted once written.
//
// Quantity is signed: positive = stock in (purchase from a supplier),
// negative = stock out (sale to a customer). Invariant: the sum of signed
// quantities for a product over all transactions up to time T equals the
// product's stock level at T, barring manual stock edits.
type LedgerTransaction struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	// CounterpartyID is the supplier for incoming movements and the customer
	// for outgoing ones.
	CounterpartyID uuid.UUID `json:"counterparty_id" gorm:"type:uuid;not null"`
	// BatchID groups the transactions written by a single order completion.
	// Nil for stock-entry transactions, which are reported individually.
	BatchID   *uuid.UUID      `json:"batch_id,omitempty" gorm:"type:uuid;index"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Value     decimal.Decimal `json:"value" gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `json:"created_at" gorm:"index"`
}

// TableName overrides GORM's default pluralization (ledger_transactions is
// already correct, but pinning it keeps the local store key and the table
// name aligned).
func (LedgerTransaction) TableName() string { return "ledger_transactions" }
