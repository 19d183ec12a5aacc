package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines product business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type service struct{ repo Repository }

// NewService creates a new product service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}
	p := &Product{
		ID:            uuid.New(),
		Name:          req.Name,
		Description:   req.Description,
		SKU:           req.SKU,
		Category:      req.Category,
		UnitPrice:     req.UnitPrice,
		CurrentStock:  req.CurrentStock,
		MinStockLevel: req.MinStockLevel,
		ImageURL:      req.ImageURL,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = req.Name
	p.Description = req.Description
	p.SKU = req.SKU
	p.Category = req.Category
	p.UnitPrice = req.UnitPrice
	p.CurrentStock = req.CurrentStock
	p.MinStockLevel = req.MinStockLevel
	p.ImageURL = req.ImageURL
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateProduct(req CreateProductRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.UnitPrice.IsNegative() {
		return fmt.Errorf("unit_price must not be negative")
	}
	if req.CurrentStock < 0 {
		return fmt.Errorf("current_stock must not be negative")
	}
	return nil
}
