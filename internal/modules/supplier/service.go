package supplier

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines supplier business logic.
type Service interface {
	CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*Supplier, error)
	GetSupplier(ctx context.Context, id string) (*Supplier, error)
	ListSuppliers(ctx context.Context) ([]*Supplier, error)
	UpdateSupplier(ctx context.Context, id string, req UpdateSupplierRequest) (*Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
}

type service struct{ repo Repository }

// NewService creates a new supplier service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*Supplier, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	sup := &Supplier{
		ID:            uuid.New(),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *service) GetSupplier(ctx context.Context, id string) (*Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListSuppliers(ctx context.Context) ([]*Supplier, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateSupplier(ctx context.Context, id string, req UpdateSupplierRequest) (*Supplier, error) {
	sup, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("name must not be empty")
		}
		sup.Name = *req.Name
	}
	if req.ContactPerson != nil {
		sup.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		sup.Email = *req.Email
	}
	if req.Phone != nil {
		sup.Phone = *req.Phone
	}
	if req.Address != nil {
		sup.Address = *req.Address
	}
	if req.Notes != nil {
		sup.Notes = *req.Notes
	}
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *service) DeleteSupplier(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
