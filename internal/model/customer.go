package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the counterparty of outgoing ledger transactions (sales orders).
type Customer struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name    string    `json:"name" gorm:"index;not null"`
	Contact string    `json:"contact"`
	Address string    `json:"address"`
	// TaxID holds the customer's CPF/CNPJ-style tax identifier.
	TaxID     string    `json:"tax_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
