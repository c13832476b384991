package service

// In-memory repository stubs shared by the service tests. They mirror the
// semantics of the real local repositories: case-insensitive name lookup,
// ErrNotFound on misses, value cloning so callers never alias stored state.

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/PedroABernis/InventoryManager/internal/dto"
	"github.com/PedroABernis/InventoryManager/internal/model"
	"github.com/PedroABernis/InventoryManager/internal/repository"
)

// ── Products ─────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cloned := *p
	r.products[p.ID] = &cloned
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cloned := *p
	return &cloned, nil
}

func (r *stubProductRepo) FindByName(_ context.Context, name string) (*model.Product, error) {
	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) {
			cloned := *p
			return &cloned, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, error) {
	result := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, *p)
	}
	return result, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cloned := *p
	r.products[p.ID] = &cloned
	return nil
}

func (r *stubProductRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	p, ok := r.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Active = active
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// ── Suppliers ────────────────────────────────────────────────────────────────

type stubSupplierRepo struct {
	suppliers map[uuid.UUID]*model.Supplier
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uuid.UUID]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	cloned := *s
	r.suppliers[s.ID] = &cloned
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cloned := *s
	return &cloned, nil
}

func (r *stubSupplierRepo) FindByName(_ context.Context, name string) (*model.Supplier, error) {
	for _, s := range r.suppliers {
		if strings.EqualFold(s.Name, name) {
			cloned := *s
			return &cloned, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubSupplierRepo) List(_ context.Context, _ dto.SupplierFilter) ([]model.Supplier, error) {
	result := make([]model.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		result = append(result, *s)
	}
	return result, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	if _, ok := r.suppliers[s.ID]; !ok {
		return repository.ErrNotFound
	}
	cloned := *s
	r.suppliers[s.ID] = &cloned
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.suppliers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.suppliers, id)
	return nil
}

// ── Customers ────────────────────────────────────────────────────────────────

type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cloned := *c
	r.customers[c.ID] = &cloned
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cloned := *c
	return &cloned, nil
}

func (r *stubCustomerRepo) List(_ context.Context, _ dto.CustomerFilter) ([]model.Customer, error) {
	result := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		result = append(result, *c)
	}
	return result, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return repository.ErrNotFound
	}
	cloned := *c
	r.customers[c.ID] = &cloned
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.customers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.customers, id)
	return nil
}

// ── Orders ───────────────────────────────────────────────────────────────────

type stubOrderRepo struct {
	orders map[uuid.UUID]*model.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[uuid.UUID]*model.Order)}
}

func cloneOrder(o *model.Order) *model.Order {
	cloned := *o
	cloned.Items = append([]model.OrderItem(nil), o.Items...)
	return &cloned
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.orders[o.ID] = cloneOrder(o)
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneOrder(o), nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]model.Order, error) {
	result := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, *cloneOrder(o))
	}
	return result, nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *model.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return repository.ErrNotFound
	}
	r.orders[o.ID] = cloneOrder(o)
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

// ── Ledger ───────────────────────────────────────────────────────────────────

type stubLedgerRepo struct {
	txns []model.LedgerTransaction
}

func newStubLedgerRepo() *stubLedgerRepo { return &stubLedgerRepo{} }

func (r *stubLedgerRepo) Append(_ context.Context, txns ...*model.LedgerTransaction) error {
	for _, t := range txns {
		r.txns = append(r.txns, *t)
	}
	return nil
}

// ListByProduct returns newest first: reverse insertion order, which also
// keeps same-timestamp batch members deterministic.
func (r *stubLedgerRepo) ListByProduct(_ context.Context, productID uuid.UUID) ([]model.LedgerTransaction, error) {
	var result []model.LedgerTransaction
	for i := len(r.txns) - 1; i >= 0; i-- {
		if r.txns[i].ProductID == productID {
			result = append(result, r.txns[i])
		}
	}
	return result, nil
}

func (r *stubLedgerRepo) byProduct(productID uuid.UUID) []model.LedgerTransaction {
	var result []model.LedgerTransaction
	for _, t := range r.txns {
		if t.ProductID == productID {
			result = append(result, t)
		}
	}
	return result
}
