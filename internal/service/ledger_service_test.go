package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PedroABernis/InventoryManager/internal/apperr"
	"github.com/PedroABernis/InventoryManager/internal/model"
)

func TestHistoryReconstructsStockLevels(t *testing.T) {
	products := newStubProductRepo()
	ledger := newStubLedgerRepo()
	svc := NewLedgerService(ledger, products)

	p := &model.Product{ID: uuid.New(), Name: "Widget", Stock: 12, Active: true}
	require.NoError(t, products.Create(context.Background(), p))

	supplier := uuid.New()
	customer := uuid.New()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Oldest to newest: +10 purchase, -3 sale, +5 purchase.
	require.NoError(t, ledger.Append(context.Background(),
		&model.LedgerTransaction{ID: uuid.New(), ProductID: p.ID, CounterpartyID: supplier, Quantity: 10, Value: decimal.NewFromInt(50), CreatedAt: base},
		&model.LedgerTransaction{ID: uuid.New(), ProductID: p.ID, CounterpartyID: customer, Quantity: -3, Value: decimal.NewFromInt(21), CreatedAt: base.Add(time.Hour)},
		&model.LedgerTransaction{ID: uuid.New(), ProductID: p.ID, CounterpartyID: supplier, Quantity: 5, Value: decimal.NewFromInt(30), CreatedAt: base.Add(2 * time.Hour)},
	))

	rows, err := svc.History(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Newest first.
	assert.Equal(t, "in", rows[0].Kind)
	assert.Equal(t, 5, rows[0].Quantity)
	assert.Equal(t, 7, rows[0].PreviousStock)
	assert.Equal(t, 12, rows[0].CurrentStock)

	assert.Equal(t, "out", rows[1].Kind)
	assert.Equal(t, 3, rows[1].Quantity, "displayed quantities are unsigned")
	assert.Equal(t, 10, rows[1].PreviousStock)
	assert.Equal(t, 7, rows[1].CurrentStock)

	assert.Equal(t, "in", rows[2].Kind)
	assert.Equal(t, 10, rows[2].Quantity)
	assert.Equal(t, 0, rows[2].PreviousStock)
	assert.Equal(t, 10, rows[2].CurrentStock)

	// The newest row's balance equals the product's live stock.
	assert.Equal(t, p.Stock, rows[0].CurrentStock)
}

func TestHistoryEmptyLedger(t *testing.T) {
	products := newStubProductRepo()
	ledger := newStubLedgerRepo()
	svc := NewLedgerService(ledger, products)

	p := &model.Product{ID: uuid.New(), Name: "Widget", Active: true}
	require.NoError(t, products.Create(context.Background(), p))

	rows, err := svc.History(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestHistoryUnknownProduct(t *testing.T) {
	svc := NewLedgerService(newStubLedgerRepo(), newStubProductRepo())

	_, err := svc.History(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestTransactionsForNewestFirst(t *testing.T) {
	products := newStubProductRepo()
	ledger := newStubLedgerRepo()
	svc := NewLedgerService(ledger, products)

	p := &model.Product{ID: uuid.New(), Name: "Widget", Active: true}
	require.NoError(t, products.Create(context.Background(), p))

	batch := uuid.New()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	old := &model.LedgerTransaction{ID: uuid.New(), ProductID: p.ID, CounterpartyID: uuid.New(), Quantity: 4, Value: decimal.NewFromInt(8), CreatedAt: base}
	recent := &model.LedgerTransaction{ID: uuid.New(), ProductID: p.ID, CounterpartyID: uuid.New(), BatchID: &batch, Quantity: -1, Value: decimal.NewFromInt(5), CreatedAt: base.Add(time.Minute)}
	require.NoError(t, ledger.Append(context.Background(), old, recent))

	resp, err := svc.TransactionsFor(context.Background(), p.ID)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, recent.ID.String(), resp[0].ID)
	assert.Equal(t, batch.String(), resp[0].BatchID)
	assert.Equal(t, old.ID.String(), resp[1].ID)
	assert.Empty(t, resp[1].BatchID)
}
