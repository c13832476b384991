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

// CustomerService manages the customer reference data.
type CustomerService interface {
	Create(ctx context.Context, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	List(ctx context.Context, filter dto.CustomerFilter) ([]dto.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	customer := &model.Customer{
		ID:      uuid.New(),
		Name:    req.Name,
		Contact: req.Contact,
		Address: req.Address,
		TaxID:   req.TaxID,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NewNotFound("customer", id.String())
		}
		return nil, err
	}
	return customerToResponse(customer), nil
}

func (s *customerService) List(ctx context.Context, filter dto.CustomerFilter) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		result = append(result, *customerToResponse(&customers[i]))
	}
	return result, nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NewNotFound("customer", id.String())
		}
		return nil, err
	}

	customer.Name = req.Name
	customer.Contact = req.Contact
	customer.Address = req.Address
	customer.TaxID = req.TaxID
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NewNotFound("customer", id.String())
		}
		return err
	}
	return nil
}

func customerToResponse(c *model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Contact:   c.Contact,
		Address:   c.Address,
		TaxID:     c.TaxID,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
