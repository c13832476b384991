package service

import (
	"context"
	"errors"
	"time"

	"github.com/PedroABernis/InventoryManager/internal/apperr"
	"github.com/PedroABernis/InventoryManager/internal/dto"
	"github.com/PedroABernis/InventoryManager/internal/model"
	"github.com/PedroABernis/InventoryManager/internal/repository"

	"github.com/google/uuid"
)

// LedgerService exposes the inventory ledger read side: the raw transaction
// list and the reconstructed stock history used by the dashboard.
type LedgerService interface {
	TransactionsFor(ctx context.Context, productID uuid.UUID) ([]dto.LedgerTransactionResponse, error)
	History(ctx context.Context, productID uuid.UUID) ([]dto.LedgerHistoryRow, error)
}

type ledgerService struct {
	ledger   repository.LedgerRepository
	products repository.ProductRepository
}

func NewLedgerService(ledger repository.LedgerRepository, products repository.ProductRepository) LedgerService {
	return &ledgerService{ledger: ledger, products: products}
}

func (s *ledgerService) TransactionsFor(ctx context.Context, productID uuid.UUID) ([]dto.LedgerTransactionResponse, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NewNotFound("product", productID.String())
		}
		return nil, err
	}
	txns, err := s.ledger.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.LedgerTransactionResponse, 0, len(txns))
	for _, t := range txns {
		result = append(result, txnToResponse(&t))
	}
	return result, nil
}

// History reconstructs a point-in-time balance for every movement without a
// stored running total. For the transaction at position i (newest first) the
// previous stock is the sum of all older quantities and the current stock is
// previous + this quantity. Computed with a single cumulative pass from the
// oldest entry. An empty ledger yields an empty history, never an error.
func (s *ledgerService) History(ctx context.Context, productID uuid.UUID) ([]dto.LedgerHistoryRow, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NewNotFound("product", productID.String())
		}
		return nil, err
	}
	txns, err := s.ledger.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.LedgerHistoryRow, len(txns))
	running := 0
	for i := len(txns) - 1; i >= 0; i-- {
		t := txns[i]
		previous := running
		running += t.Quantity

		kind, description := "in", "Purchase of goods for resale"
		quantity := t.Quantity
		if t.Quantity < 0 {
			kind, description = "out", "Sale of goods"
			quantity = -t.Quantity
		}

		rows[i] = dto.LedgerHistoryRow{
			TransactionID: t.ID.String(),
			Date:          t.CreatedAt.Format(time.RFC3339),
			Kind:          kind,
			Description:   description,
			Quantity:      quantity,
			PreviousStock: previous,
			CurrentStock:  running,
		}
	}
	return rows, nil
}

func txnToResponse(t *model.LedgerTransaction) dto.LedgerTransactionResponse {
	resp := dto.LedgerTransactionResponse{
		ID:             t.ID.String(),
		ProductID:      t.ProductID.String(),
		CounterpartyID: t.CounterpartyID.String(),
		Quantity:       t.Quantity,
		Value:          t.Value,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
	if t.BatchID != nil {
		resp.BatchID = t.BatchID.String()
	}
	return resp
}
