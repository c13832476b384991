package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PedroABernis/InventoryManager/internal/apperr"
	"github.com/PedroABernis/InventoryManager/internal/dto"
	"github.com/PedroABernis/InventoryManager/internal/model"
	"github.com/PedroABernis/InventoryManager/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockEntryService registers incoming merchandise batches: it upserts
// products, derives unit cost, and appends one ledger transaction per line.
type StockEntryService interface {
	Register(ctx context.Context, req dto.StockEntryRequest) (*dto.StockEntryResponse, error)
}

type stockEntryService struct {
	// mu serializes the read-modify-write cycle against the other workflow
	// writer (order completion); see NewStockEntryService.
	mu        *sync.Mutex
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
	ledger    repository.LedgerRepository
}

// NewStockEntryService builds the workflow. mu must be the same mutex handed
// to the order service: stock entry and order completion are the only two
// writers of products and ledger, and each full cycle is a critical section.
func NewStockEntryService(
	mu *sync.Mutex,
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	ledger repository.LedgerRepository,
) StockEntryService {
	return &stockEntryService{mu: mu, products: products, suppliers: suppliers, ledger: ledger}
}

// Register applies a stock-entry batch. All validation happens before any
// write: an unresolved supplier or a bad line rejects the request with
// nothing persisted. Lines are then processed in input order, so a product
// created by an earlier line is visible to later lines of the same batch.
func (s *stockEntryService) Register(ctx context.Context, req dto.StockEntryRequest) (*dto.StockEntryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	supplier, err := s.suppliers.FindByName(ctx, strings.TrimSpace(req.Supplier))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NewValidation("no supplier selected")
		}
		return nil, err
	}

	if fields := validateEntryLines(req.Entries); len(fields) > 0 {
		return nil, apperr.NewFieldValidation("invalid stock entry lines", fields)
	}

	now := time.Now().UTC()
	txnIDs := make([]string, 0, len(req.Entries))
	var createdNames []string

	for _, line := range req.Entries {
		name := strings.TrimSpace(line.ProductName)

		product, created, err := s.findOrCreateProduct(ctx, name, supplier.ID, now)
		if err != nil {
			return nil, err
		}
		if created {
			createdNames = append(createdNames, product.Name)
		}

		product.Stock += line.Quantity
		// Last entry wins: the unit cost is not averaged over history.
		product.Cost = line.TotalPaid.Div(decimal.NewFromInt(int64(line.Quantity)))
		if err := s.products.Update(ctx, product); err != nil {
			return nil, err
		}

		txn := &model.LedgerTransaction{
			ID:             uuid.New(),
			ProductID:      product.ID,
			CounterpartyID: supplier.ID,
			Quantity:       line.Quantity,
			Value:          line.TotalPaid,
			CreatedAt:      now,
		}
		if err := s.ledger.Append(ctx, txn); err != nil {
			return nil, err
		}
		txnIDs = append(txnIDs, txn.ID.String())
	}

	return &dto.StockEntryResponse{
		Message:         "stock entry recorded",
		TransactionIDs:  txnIDs,
		CreatedProducts: createdNames,
	}, nil
}

// findOrCreateProduct resolves a product by case-insensitive exact name,
// creating it with zero stock and cost when unknown. The bool reports
// whether a new product was created.
func (s *stockEntryService) findOrCreateProduct(ctx context.Context, name string, supplierID uuid.UUID, now time.Time) (*model.Product, bool, error) {
	product, err := s.products.FindByName(ctx, name)
	if err == nil {
		return product, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	product = &model.Product{
		ID:         uuid.New(),
		Name:       name,
		Price:      decimal.Zero,
		Cost:       decimal.Zero,
		Stock:      0,
		SupplierID: &supplierID,
		Active:     true,
		CreatedAt:  now,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, false, err
	}
	return product, true, nil
}

func validateEntryLines(lines []dto.StockEntryLine) map[string]string {
	fields := make(map[string]string)
	for i, line := range lines {
		if strings.TrimSpace(line.ProductName) == "" {
			fields[fmt.Sprintf("entries[%d].product_name", i)] = "product name must not be empty"
		}
		if line.Quantity <= 0 {
			fields[fmt.Sprintf("entries[%d].quantity", i)] = "quantity must be greater than zero"
		}
		if !line.TotalPaid.IsPositive() {
			fields[fmt.Sprintf("entries[%d].total_paid", i)] = "total paid must be greater than zero"
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
