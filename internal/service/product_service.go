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
	"github.com/shopspring/decimal"
)

var percent = decimal.NewFromInt(100)

// ProductService defines the business logic contract for the product catalog.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	products  repository.ProductRepository
	suppliers repository.SupplierRepository
}

func NewProductService(products repository.ProductRepository, suppliers repository.SupplierRepository) ProductService {
	return &productService{products: products, suppliers: suppliers}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	supplierID, err := s.resolveSupplier(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Cost:        decimal.Zero,
		SupplierID:  &supplierID,
		Image:       req.Image,
		Active:      true,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NewNotFound("product", id.String())
		}
		return nil, err
	}
	return productToResponse(product), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, *productToResponse(&products[i]))
	}
	return result, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NewNotFound("product", id.String())
		}
		return nil, err
	}

	supplierID, err := s.resolveSupplier(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.SupplierID = &supplierID
	product.Image = req.Image
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

func (s *productService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.products.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NewNotFound("product", id.String())
		}
		return err
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NewNotFound("product", id.String())
		}
		return err
	}
	return nil
}

func (s *productService) resolveSupplier(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.NewValidation("select a valid supplier")
	}
	if _, err := s.suppliers.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return uuid.Nil, apperr.NewValidation("select a valid supplier")
		}
		return uuid.Nil, err
	}
	return id, nil
}

// ProfitMargin returns (price - cost) / cost * 100, or nil while the product
// has no recorded acquisition cost.
func ProfitMargin(price, cost decimal.Decimal) *decimal.Decimal {
	if !cost.IsPositive() {
		return nil
	}
	m := price.Sub(cost).Div(cost).Mul(percent).Round(2)
	return &m
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:              p.ID.String(),
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Cost:            p.Cost,
		ProfitMarginPct: ProfitMargin(p.Price, p.Cost),
		Stock:           p.Stock,
		Image:           p.Image,
		Active:          p.Active,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
	if p.SupplierID != nil {
		resp.SupplierID = p.SupplierID.String()
	}
	return resp
}
