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

// OrderService manages the sales-order lifecycle: draft CRUD and the one-way
// transition to Completed.
type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
	List(ctx context.Context) ([]dto.OrderResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
}

type orderService struct {
	mu        *sync.Mutex
	orders    repository.OrderRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	ledger    repository.LedgerRepository
}

// NewOrderService builds the lifecycle service. mu is shared with the
// stock-entry workflow; see NewStockEntryService.
func NewOrderService(
	mu *sync.Mutex,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	ledger repository.LedgerRepository,
) OrderService {
	return &orderService{mu: mu, orders: orders, products: products, customers: customers, ledger: ledger}
}

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	customerID, items, err := s.resolveDraft(ctx, req.CustomerID, req.Items)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Items:      items,
		Total:      decimal.Zero,
		Status:     model.OrderStatusDraft,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, order), nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, order), nil
}

func (s *orderService) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, *s.toResponse(ctx, &orders[i]))
	}
	return result, nil
}

func (s *orderService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Completed() {
		return nil, apperr.NewValidation("completed orders cannot be edited")
	}

	customerID, items, err := s.resolveDraft(ctx, req.CustomerID, req.Items)
	if err != nil {
		return nil, err
	}
	order.CustomerID = customerID
	order.Items = items
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, order), nil
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if order.Completed() {
		return apperr.NewValidation("completed orders cannot be deleted")
	}
	return s.orders.Delete(ctx, id)
}

// Complete performs the one-way draft → completed transition.
//
// Precondition, checked before any write: every line item's product still
// exists and is active — otherwise the transition is rejected naming the
// offending products and nothing changes. On success each item decrements
// the product's stock (floored at zero: oversell is allowed but inventory
// never goes negative) and appends a negative ledger transaction valued at
// current price × quantity, the whole batch sharing one id and timestamp.
// Completing an already-completed order is a no-op.
func (s *orderService) Complete(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Completed() {
		return s.toResponse(ctx, order), nil
	}

	var offending []string
	for _, item := range order.Items {
		p, err := s.products.FindByID(ctx, item.ProductID)
		if errors.Is(err, repository.ErrNotFound) {
			offending = append(offending, item.ProductID.String())
			continue
		}
		if err != nil {
			return nil, err
		}
		if !p.Active {
			offending = append(offending, p.Name)
		}
	}
	if len(offending) > 0 {
		return nil, apperr.NewValidation(
			fmt.Sprintf("order has inactive or missing products: %s", strings.Join(offending, ", ")))
	}

	batchID := uuid.New()
	now := time.Now().UTC()
	total := decimal.Zero

	for _, item := range order.Items {
		// Re-fetch inside the apply loop: a duplicated product line must see
		// the stock left by the previous line.
		p, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}

		newStock := p.Stock - item.Quantity
		if newStock < 0 {
			newStock = 0
		}
		p.Stock = newStock
		if err := s.products.Update(ctx, p); err != nil {
			return nil, err
		}

		value := p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(value)

		txn := &model.LedgerTransaction{
			ID:             uuid.New(),
			ProductID:      p.ID,
			CounterpartyID: order.CustomerID,
			BatchID:        &batchID,
			Quantity:       -item.Quantity,
			Value:          value,
			CreatedAt:      now,
		}
		if err := s.ledger.Append(ctx, txn); err != nil {
			return nil, err
		}
	}

	order.Status = model.OrderStatusCompleted
	order.Total = total
	order.BatchID = &batchID
	order.CompletedAt = &now
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return s.toResponse(ctx, order), nil
}

func (s *orderService) find(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NewNotFound("order", id.String())
		}
		return nil, err
	}
	return order, nil
}

// resolveDraft validates the customer and item references of a draft and
// returns the model form. Reference misses are validation failures that
// name the missing entity.
func (s *orderService) resolveDraft(ctx context.Context, customerID string, items []dto.OrderItemRequest) (uuid.UUID, []model.OrderItem, error) {
	cid, err := uuid.Parse(customerID)
	if err != nil {
		return uuid.Nil, nil, apperr.NewValidation("invalid customer id")
	}
	if _, err := s.customers.FindByID(ctx, cid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return uuid.Nil, nil, apperr.NewValidation(fmt.Sprintf("customer %s not found", customerID))
		}
		return uuid.Nil, nil, err
	}

	resolved := make([]model.OrderItem, 0, len(items))
	var missing []string
	for _, item := range items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return uuid.Nil, nil, apperr.NewValidation("invalid product id")
		}
		if _, err := s.products.FindByID(ctx, pid); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				missing = append(missing, item.ProductID)
				continue
			}
			return uuid.Nil, nil, err
		}
		resolved = append(resolved, model.OrderItem{
			ID:        uuid.New(),
			ProductID: pid,
			Quantity:  item.Quantity,
		})
	}
	if len(missing) > 0 {
		return uuid.Nil, nil, apperr.NewValidation(
			fmt.Sprintf("unknown products: %s", strings.Join(missing, ", ")))
	}
	return cid, resolved, nil
}

// toResponse renders an order. Draft totals are recomputed from current
// product prices on every read, so they track price changes until completion
// freezes the stored total. A product deleted after being added to a draft
// contributes zero, matching the display behavior of the source system.
func (s *orderService) toResponse(ctx context.Context, o *model.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	liveTotal := decimal.Zero

	for _, item := range o.Items {
		ir := dto.OrderItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: decimal.Zero,
			Subtotal:  decimal.Zero,
		}
		if p, err := s.products.FindByID(ctx, item.ProductID); err == nil {
			ir.ProductName = p.Name
			ir.UnitPrice = p.Price
			ir.Subtotal = p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		}
		liveTotal = liveTotal.Add(ir.Subtotal)
		items = append(items, ir)
	}

	resp := &dto.OrderResponse{
		ID:         o.ID.String(),
		CustomerID: o.CustomerID.String(),
		Items:      items,
		Total:      o.Total,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
	if !o.Completed() {
		resp.Total = liveTotal
	}
	if o.BatchID != nil {
		resp.BatchID = o.BatchID.String()
	}
	if o.CompletedAt != nil {
		resp.CompletedAt = o.CompletedAt.Format(time.RFC3339)
	}
	if c, err := s.customers.FindByID(ctx, o.CustomerID); err == nil {
		resp.CustomerName = c.Name
	}
	return resp
}
