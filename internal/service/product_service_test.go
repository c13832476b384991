package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PedroABernis/InventoryManager/internal/apperr"
	"github.com/PedroABernis/InventoryManager/internal/dto"
	"github.com/PedroABernis/InventoryManager/internal/model"
)

func TestProfitMargin(t *testing.T) {
	cases := []struct {
		name  string
		price int64
		cost  int64
		want  string // "" = nil margin
	}{
		{"no cost recorded", 15, 0, ""},
		{"fifty percent", 15, 10, "50"},
		{"negative margin", 9, 12, "-25"},
		{"break even", 10, 10, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ProfitMargin(decimal.NewFromInt(tc.price), decimal.NewFromInt(tc.cost))
			if tc.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s", got)
		})
	}
}

func TestProductCreateRequiresKnownSupplier(t *testing.T) {
	products := newStubProductRepo()
	suppliers := newStubSupplierRepo()
	svc := NewProductService(products, suppliers)

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Widget",
		Price:      decimal.NewFromInt(10),
		SupplierID: uuid.NewString(),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Empty(t, products.products)
}

func TestProductCreateDefaults(t *testing.T) {
	products := newStubProductRepo()
	suppliers := newStubSupplierRepo()
	svc := NewProductService(products, suppliers)

	sup := &model.Supplier{ID: uuid.New(), Name: "Acme"}
	require.NoError(t, suppliers.Create(context.Background(), sup))

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Widget",
		Price:      decimal.NewFromInt(10),
		SupplierID: sup.ID.String(),
	})
	require.NoError(t, err)
	assert.True(t, resp.Active, "new products start active")
	assert.Equal(t, 0, resp.Stock, "stock only moves through the workflows")
	assert.True(t, resp.Cost.Equal(decimal.Zero))
	assert.Nil(t, resp.ProfitMarginPct, "no margin until a stock entry sets the cost")
	assert.Equal(t, sup.ID.String(), resp.SupplierID)
}

func TestProductGetUnknownIsNotFound(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), newStubSupplierRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
