// Package repository defines the data access contracts for every entity kind
// and ships two interchangeable implementations: a local one on top of the
// flat JSON record store (the default, mirroring the original local-storage
// layout) and a GORM/Postgres one for multi-writer deployments. Services
// depend on the interfaces only.
package repository

import (
	"errors"

	"github.com/PedroABernis/InventoryManager/internal/store"

	"gorm.io/gorm"
)

// ErrNotFound is returned by every repository when the requested record does
// not exist, regardless of the backing driver.
var ErrNotFound = errors.New("record not found")

// Collection keys of the local store. One flat key per entity kind, matching
// the persisted layout of the original system.
const (
	KeyProducts     = "products"
	KeySuppliers    = "suppliers"
	KeyCustomers    = "customers"
	KeyOrders       = "orders"
	KeyTransactions = "transactions"
	KeyUsers        = "users"
)

// Set bundles one repository per entity kind; the composition root builds
// exactly one Set from the configured storage driver.
type Set struct {
	Products  ProductRepository
	Suppliers SupplierRepository
	Customers CustomerRepository
	Orders    OrderRepository
	Ledger    LedgerRepository
	Users     UserRepository
}

// NewLocalSet wires every repository to the flat JSON record store.
func NewLocalSet(s *store.Store) *Set {
	return &Set{
		Products:  &localProductRepo{s: s},
		Suppliers: &localSupplierRepo{s: s},
		Customers: &localCustomerRepo{s: s},
		Orders:    &localOrderRepo{s: s},
		Ledger:    &localLedgerRepo{s: s},
		Users:     &localUserRepo{s: s},
	}
}

// NewPostgresSet wires every repository to GORM.
func NewPostgresSet(db *gorm.DB) *Set {
	return &Set{
		Products:  &pgProductRepo{db: db},
		Suppliers: &pgSupplierRepo{db: db},
		Customers: &pgCustomerRepo{db: db},
		Orders:    &pgOrderRepo{db: db},
		Ledger:    &pgLedgerRepo{db: db},
		Users:     &pgUserRepo{db: db},
	}
}

// translate maps driver-specific not-found errors onto ErrNotFound.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
