package model

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is the counterparty of incoming stock entries.
// Looked up by name during stock entry; never mutated by the workflows.
type Supplier struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"index;not null"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
