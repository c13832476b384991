package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable item. Stock and Cost are derived by the stock-entry
// workflow (Stock += received quantity, Cost = last batch's total / quantity)
// and by order completion (Stock -=, clamped at zero).
type Product struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"index;not null"`
	Description string    `json:"description"`
	// Price is the unit sale price; Cost is the derived unit acquisition cost.
	// Cost == 0 means "never purchased yet" — profit margin is undefined then.
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Cost       decimal.Decimal `json:"cost" gorm:"type:decimal(10,2);not null;default:0"`
	Stock      int             `json:"stock" gorm:"not null;default:0"`
	SupplierID *uuid.UUID      `json:"supplier_id,omitempty" gorm:"type:uuid;index"`
	// Image holds an optional data-URL thumbnail uploaded from the catalog form.
	Image     *string   `json:"image,omitempty"`
	Active    bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
