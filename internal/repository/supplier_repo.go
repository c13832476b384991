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

// SupplierRepository defines the data access contract for suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
	// FindByName matches case-insensitively and exactly — this is the lookup
	// the stock-entry workflow resolves free-text supplier input against.
	FindByName(ctx context.Context, name string) (*model.Supplier, error)
	List(ctx context.Context, filter dto.SupplierFilter) ([]model.Supplier, error)
	Update(ctx context.Context, s *model.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type localSupplierRepo struct{ s *store.Store }

func (r *localSupplierRepo) load() ([]model.Supplier, error) {
	return store.LoadCollection[model.Supplier](r.s, KeySuppliers)
}

func (r *localSupplierRepo) save(suppliers []model.Supplier) error {
	return store.SaveCollection(r.s, KeySuppliers, suppliers)
}

func (r *localSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	suppliers, err := r.load()
	if err != nil {
		return err
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	return r.save(append(suppliers, *s))
}

func (r *localSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	suppliers, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range suppliers {
		if suppliers[i].ID == id {
			return &suppliers[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *localSupplierRepo) FindByName(_ context.Context, name string) (*model.Supplier, error) {
	suppliers, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range suppliers {
		if strings.EqualFold(suppliers[i].Name, name) {
			return &suppliers[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *localSupplierRepo) List(_ context.Context, filter dto.SupplierFilter) ([]model.Supplier, error) {
	suppliers, err := r.load()
	if err != nil {
		return nil, err
	}
	result := make([]model.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if filter.Name != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(filter.Name)) {
			continue
		}
		result = append(result, s)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})
	return result, nil
}

func (r *localSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	suppliers, err := r.load()
	if err != nil {
		return err
	}
	for i := range suppliers {
		if suppliers[i].ID == s.ID {
			s.UpdatedAt = time.Now().UTC()
			suppliers[i] = *s
			return r.save(suppliers)
		}
	}
	return ErrNotFound
}

func (r *localSupplierRepo) Delete(_ context.Context, id uuid.UUID) error {
	suppliers, err := r.load()
	if err != nil {
		return err
	}
	for i := range suppliers {
		if suppliers[i].ID == id {
			return r.save(append(suppliers[:i], suppliers[i+1:]...))
		}
	}
	return ErrNotFound
}
