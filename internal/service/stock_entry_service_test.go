package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PedroABernis/InventoryManager/internal/apperr"
	"github.com/PedroABernis/InventoryManager/internal/dto"
	"github.com/PedroABernis/InventoryManager/internal/model"
)

type stockEntryFixture struct {
	svc       StockEntryService
	products  *stubProductRepo
	suppliers *stubSupplierRepo
	ledger    *stubLedgerRepo
	acme      *model.Supplier
}

func newStockEntryFixture(t *testing.T) *stockEntryFixture {
	t.Helper()
	products := newStubProductRepo()
	suppliers := newStubSupplierRepo()
	ledger := newStubLedgerRepo()

	acme := &model.Supplier{ID: uuid.New(), Name: "Acme"}
	require.NoError(t, suppliers.Create(context.Background(), acme))

	var mu sync.Mutex
	return &stockEntryFixture{
		svc:       NewStockEntryService(&mu, products, suppliers, ledger),
		products:  products,
		suppliers: suppliers,
		ledger:    ledger,
		acme:      acme,
	}
}

func TestStockEntryCreatesProductWithDerivedCost(t *testing.T) {
	f := newStockEntryFixture(t)

	resp, err := f.svc.Register(context.Background(), dto.StockEntryRequest{
		Supplier: "Acme",
		Entries: []dto.StockEntryLine{
			{ProductName: "Widget", Quantity: 10, TotalPaid: decimal.NewFromInt(50)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Widget"}, resp.CreatedProducts)
	require.Len(t, resp.TransactionIDs, 1)

	p, err := f.products.FindByName(context.Background(), "Widget")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)
	assert.True(t, p.Cost.Equal(decimal.NewFromInt(5)), "unit cost = total paid / quantity")
	assert.True(t, p.Active)
	require.NotNil(t, p.SupplierID)
	assert.Equal(t, f.acme.ID, *p.SupplierID)

	txns := f.ledger.byProduct(p.ID)
	require.Len(t, txns, 1)
	assert.Equal(t, 10, txns[0].Quantity)
	assert.True(t, txns[0].Value.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, f.acme.ID, txns[0].CounterpartyID)
	assert.Nil(t, txns[0].BatchID, "stock entries are not batch-grouped")
}

func TestStockEntrySupplierNameIsCaseInsensitive(t *testing.T) {
	f := newStockEntryFixture(t)

	_, err := f.svc.Register(context.Background(), dto.StockEntryRequest{
		Supplier: "  acme ",
		Entries: []dto.StockEntryLine{
			{ProductName: "Widget", Quantity: 1, TotalPaid: decimal.NewFromInt(3)},
		},
	})
	require.NoError(t, err)
}

func TestStockEntrySameProductTwiceInOneBatch(t *testing.T) {
	f := newStockEntryFixture(t)

	// Second line names the same product with different casing: it must hit
	// the product created by the first line, and its cost must win.
	resp, err := f.svc.Register(context.Background(), dto.StockEntryRequest{
		Supplier: "Acme",
		Entries: []dto.StockEntryLine{
			{ProductName: "Widget", Quantity: 5, TotalPaid: decimal.NewFromInt(25)},
			{ProductName: "widget", Quantity: 5, TotalPaid: decimal.NewFromInt(30)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Widget"}, resp.CreatedProducts, "only the first line creates the product")
	assert.Len(t, resp.TransactionIDs, 2)

	p, err := f.products.FindByName(context.Background(), "Widget")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)
	assert.True(t, p.Cost.Equal(decimal.NewFromInt(6)), "last entry wins: 30 / 5")
	assert.Len(t, f.ledger.byProduct(p.ID), 2)
}

func TestStockEntryAccumulatesExistingStock(t *testing.T) {
	f := newStockEntryFixture(t)
	existing := &model.Product{
		ID:     uuid.New(),
		Name:   "Widget",
		Price:  decimal.NewFromInt(9),
		Cost:   decimal.NewFromInt(2),
		Stock:  3,
		Active: true,
	}
	require.NoError(t, f.products.Create(context.Background(), existing))

	_, err := f.svc.Register(context.Background(), dto.StockEntryRequest{
		Supplier: "Acme",
		Entries: []dto.StockEntryLine{
			{ProductName: "widget", Quantity: 7, TotalPaid: decimal.NewFromInt(70)},
		},
	})
	require.NoError(t, err)

	p, err := f.products.FindByID(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Stock)
	assert.True(t, p.Cost.Equal(decimal.NewFromInt(10)))
	assert.True(t, p.Price.Equal(decimal.NewFromInt(9)), "price is untouched by stock entries")
}

func TestStockEntryUnknownSupplierRejectsBatch(t *testing.T) {
	f := newStockEntryFixture(t)

	_, err := f.svc.Register(context.Background(), dto.StockEntryRequest{
		Supplier: "Nobody Inc",
		Entries: []dto.StockEntryLine{
			{ProductName: "Widget", Quantity: 10, TotalPaid: decimal.NewFromInt(50)},
		},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Empty(t, f.products.products, "nothing persisted")
	assert.Empty(t, f.ledger.txns)
}

func TestStockEntryBadLineRejectsWholeBatch(t *testing.T) {
	f := newStockEntryFixture(t)

	// One valid line plus one invalid line: all-or-nothing, so even the
	// valid line must not be applied.
	_, err := f.svc.Register(context.Background(), dto.StockEntryRequest{
		Supplier: "Acme",
		Entries: []dto.StockEntryLine{
			{ProductName: "Widget", Quantity: 10, TotalPaid: decimal.NewFromInt(50)},
			{ProductName: "Gadget", Quantity: 0, TotalPaid: decimal.NewFromInt(20)},
		},
	})
	require.Error(t, err)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "entries[1].quantity")
	assert.Empty(t, f.products.products)
	assert.Empty(t, f.ledger.txns)
}
