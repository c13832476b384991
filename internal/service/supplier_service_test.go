package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PedroABernis/InventoryManager/internal/apperr"
	"github.com/PedroABernis/InventoryManager/internal/dto"
)

func TestSupplierNamesStayUnique(t *testing.T) {
	repo := newStubSupplierRepo()
	svc := NewSupplierService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, dto.SaveSupplierRequest{Name: "Acme", Contact: "acme@example.com"})
	require.NoError(t, err)

	// Duplicate create, case-insensitive: stock entries resolve suppliers by
	// name, so a second "acme" would make that lookup ambiguous.
	_, err = svc.Create(ctx, dto.SaveSupplierRequest{Name: "acme", Contact: "other@example.com"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	other, err := svc.Create(ctx, dto.SaveSupplierRequest{Name: "Globex", Contact: "globex@example.com"})
	require.NoError(t, err)

	// Renaming onto an existing name is rejected too.
	_, err = svc.Update(ctx, uuid.MustParse(other.ID), dto.SaveSupplierRequest{Name: "ACME", Contact: "globex@example.com"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	// Updating a supplier without changing its name is fine.
	_, err = svc.Update(ctx, uuid.MustParse(first.ID), dto.SaveSupplierRequest{Name: "Acme", Contact: "new@example.com"})
	require.NoError(t, err)
}

func TestSupplierDeleteUnknownIsNotFound(t *testing.T) {
	svc := NewSupplierService(newStubSupplierRepo())

	err := svc.Delete(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
