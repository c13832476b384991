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

// ProductRepository defines the data access contract for products.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	// FindByName matches the product name case-insensitively and exactly.
	FindByName(ctx context.Context, name string) (*model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type localProductRepo struct{ s *store.Store }

func (r *localProductRepo) load() ([]model.Product, error) {
	return store.LoadCollection[model.Product](r.s, KeyProducts)
}

func (r *localProductRepo) save(products []model.Product) error {
	return store.SaveCollection(r.s, KeyProducts, products)
}

func (r *localProductRepo) Create(_ context.Context, p *model.Product) error {
	products, err := r.load()
	if err != nil {
		return err
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return r.save(append(products, *p))
}

func (r *localProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *localProductRepo) FindByName(_ context.Context, name string) (*model.Product, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if strings.EqualFold(products[i].Name, name) {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *localProductRepo) List(_ context.Context, filter dto.ProductFilter) ([]model.Product, error) {
	products, err := r.load()
	if err != nil {
		return nil, err
	}

	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		switch filter.Active {
		case "false":
			if p.Active {
				continue
			}
		case "all":
			// no filter
		default:
			if !p.Active {
				continue
			}
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.SupplierID != "" {
			if p.SupplierID == nil || p.SupplierID.String() != filter.SupplierID {
				continue
			}
		}
		result = append(result, p)
	}

	switch filter.PriceSort {
	case "asc":
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price.LessThan(result[j].Price) })
	case "desc":
		sort.SliceStable(result, func(i, j int) bool { return result[j].Price.LessThan(result[i].Price) })
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
		})
	}
	return result, nil
}

func (r *localProductRepo) Update(_ context.Context, p *model.Product) error {
	products, err := r.load()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == p.ID {
			p.UpdatedAt = time.Now().UTC()
			products[i] = *p
			return r.save(products)
		}
	}
	return ErrNotFound
}

func (r *localProductRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	products, err := r.load()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			products[i].Active = active
			products[i].UpdatedAt = time.Now().UTC()
			return r.save(products)
		}
	}
	return ErrNotFound
}

func (r *localProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	products, err := r.load()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			return r.save(append(products[:i], products[i+1:]...))
		}
	}
	return ErrNotFound
}
