package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/PedroABernis/InventoryManager/internal/dto"
	"github.com/PedroABernis/InventoryManager/internal/model"
	"github.com/PedroABernis/InventoryManager/internal/store"

	"github.com/google/uuid"
)

// CustomerRepository defines the data access contract for customers.
type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context, filter dto.CustomerFilter) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type localCustomerRepo struct{ s *store.Store }

func (r *localCustomerRepo) load() ([]model.Customer, error) {
	return store.LoadCollection[model.Customer](r.s, KeyCustomers)
}

func (r *localCustomerRepo) save(customers []model.Customer) error {
	return store.SaveCollection(r.s, KeyCustomers, customers)
}

func (r *localCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	customers, err := r.load()
	if err != nil {
		return err
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	return r.save(append(customers, *c))
}

func (r *localCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	customers, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *localCustomerRepo) List(_ context.Context, filter dto.CustomerFilter) ([]model.Customer, error) {
	customers, err := r.load()
	if err != nil {
		return nil, err
	}
	result := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if filter.Name != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.TaxID != "" && !strings.Contains(c.TaxID, filter.TaxID) {
			continue
		}
		result = append(result, c)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})
	return result, nil
}

func (r *localCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	customers, err := r.load()
	if err != nil {
		return err
	}
	for i := range customers {
		if customers[i].ID == c.ID {
			c.UpdatedAt = time.Now().UTC()
			customers[i] = *c
			return r.save(customers)
		}
	}
	return ErrNotFound
}

func (r *localCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	customers, err := r.load()
	if err != nil {
		return err
	}
	for i := range customers {
		if customers[i].ID == id {
			return r.save(append(customers[:i], customers[i+1:]...))
		}
	}
	return ErrNotFound
}
