package repository

import (
	"context"
	"sort"
	"time"

	"github.com/PedroABernis/InventoryManager/internal/model"
	"github.com/PedroABernis/InventoryManager/internal/store"

	"github.com/google/uuid"
)

// OrderRepository defines the data access contract for sales orders.
// Items travel embedded in the order on every read and write.
type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	// List returns all orders, newest first.
	List(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, o *model.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type localOrderRepo struct{ s *store.Store }

func (r *localOrderRepo) load() ([]model.Order, error) {
	return store.LoadCollection[model.Order](r.s, KeyOrders)
}

func (r *localOrderRepo) save(orders []model.Order) error {
	return store.SaveCollection(r.s, KeyOrders, orders)
}

func (r *localOrderRepo) Create(_ context.Context, o *model.Order) error {
	orders, err := r.load()
	if err != nil {
		return err
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
	return r.save(append(orders, *o))
}

func (r *localOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	orders, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *localOrderRepo) List(_ context.Context) ([]model.Order, error) {
	orders, err := r.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[j].CreatedAt.Before(orders[i].CreatedAt)
	})
	return orders, nil
}

func (r *localOrderRepo) Update(_ context.Context, o *model.Order) error {
	orders, err := r.load()
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == o.ID {
			o.UpdatedAt = time.Now().UTC()
			orders[i] = *o
			return r.save(orders)
		}
	}
	return ErrNotFound
}

func (r *localOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	orders, err := r.load()
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == id {
			return r.save(append(orders[:i], orders[i+1:]...))
		}
	}
	return ErrNotFound
}
