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

// SupplierService manages the supplier reference data.
type SupplierService interface {
	Create(ctx context.Context, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error)
	List(ctx context.Context, filter dto.SupplierFilter) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	// Supplier names must stay unique: the stock-entry workflow resolves
	// free-text input by name.
	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return nil, apperr.NewValidation("a supplier with this name already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	supplier := &model.Supplier{
		ID:      uuid.New(),
		Name:    req.Name,
		Contact: req.Contact,
		Address: req.Address,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) Get(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NewNotFound("supplier", id.String())
		}
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) List(ctx context.Context, filter dto.SupplierFilter) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		result = append(result, *supplierToResponse(&suppliers[i]))
	}
	return result, nil
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, req dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NewNotFound("supplier", id.String())
		}
		return nil, err
	}

	if other, err := s.repo.FindByName(ctx, req.Name); err == nil && other.ID != id {
		return nil, apperr.NewValidation("a supplier with this name already exists")
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	supplier.Name = req.Name
	supplier.Contact = req.Contact
	supplier.Address = req.Address
	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NewNotFound("supplier", id.String())
		}
		return err
	}
	return nil
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Contact:   s.Contact,
		Address:   s.Address,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}
