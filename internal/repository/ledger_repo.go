package repository

import (
	"context"
	"sort"

	"github.com/PedroABernis/InventoryManager/internal/model"
	"github.com/PedroABernis/InventoryManager/internal/store"

	"github.com/google/uuid"
)

// LedgerRepository is the append-only store of inventory movements.
// There is deliberately no update or delete: transactions are immutable.
type LedgerRepository interface {
	Append(ctx context.Context, txns ...*model.LedgerTransaction) error
	// ListByProduct returns the product's transactions ordered newest first.
	// The sequence is recomputed from the stored list on every call.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.LedgerTransaction, error)
}

type localLedgerRepo struct{ s *store.Store }

func (r *localLedgerRepo) load() ([]model.LedgerTransaction, error) {
	return store.LoadCollection[model.LedgerTransaction](r.s, KeyTransactions)
}

func (r *localLedgerRepo) Append(_ context.Context, txns ...*model.LedgerTransaction) error {
	all, err := r.load()
	if err != nil {
		return err
	}
	for _, t := range txns {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		all = append(all, *t)
	}
	return store.SaveCollection(r.s, KeyTransactions, all)
}

func (r *localLedgerRepo) ListByProduct(_ context.Context, productID uuid.UUID) ([]model.LedgerTransaction, error) {
	all, err := r.load()
	if err != nil {
		return nil, err
	}
	result := make([]model.LedgerTransaction, 0, len(all))
	for _, t := range all {
		if t.ProductID == productID {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[j].CreatedAt.Before(result[i].CreatedAt)
	})
	return result, nil
}
