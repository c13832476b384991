package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order lifecycle states. Completion is one-way: there is no "uncomplete".
const (
	OrderStatusDraft     = "draft"
	OrderStatusCompleted = "completed"
)

// Order is a sales order. While in draft it is fully editable (items, customer)
// and its total is recomputed from live product prices on every read. On
// completion the total is frozen, stock is decremented, and one ledger
// transaction per line item is written under a shared batch id.
type Order struct {
	ID         uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID uuid.UUID   `json:"customer_id" gorm:"type:uuid;not null;index"`
	Items      []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	// Total is authoritative only once Status == completed; drafts ignore the
	// stored value and derive it from current prices.
	Total       decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null;default:0"`
	Status      string          `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	BatchID     *uuid.UUID      `json:"batch_id,omitempty" gorm:"type:uuid"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID   uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
}

// Completed reports whether the order reached its terminal state.
func (o *Order) Completed() bool { return o.Status == OrderStatusCompleted }
