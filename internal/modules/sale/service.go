package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stocklane/stocklane-backend/internal/composite"
)

// Service defines sale business logic.
type Service interface {
	// CreateSale validates the request, computes line and header totals, and
	// persists the header-plus-items aggregate through the composite write
	// coordinator.
	CreateSale(ctx context.Context, req CreateSaleRequest) (*Sale, error)

	// GetSale retrieves a full sale with its items.
	GetSale(ctx context.Context, id string) (*Sale, error)

	// ListSales returns all sales, newest first.
	ListSales(ctx context.Context) ([]*Sale, error)

	// UpdateStatus changes the sale status.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) error

	// DeleteSale removes a sale and its items, items first.
	DeleteSale(ctx context.Context, id string) error
}

type service struct{ repo Repository }

// NewService creates a new sale service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateSale(ctx context.Context, req CreateSaleRequest) (*Sale, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("sale must contain at least one item")
	}
	if req.CustomerName == "" {
		return nil, fmt.Errorf("customer_name is required")
	}

	method := PaymentMethod(req.PaymentMethod)
	switch method {
	case PaymentCash, PaymentCreditCard, PaymentBankTransfer:
	case "":
		method = PaymentCash
	default:
		return nil, fmt.Errorf("invalid payment_method %q", req.PaymentMethod)
	}

	items := make([]*Item, 0, len(req.Items))
	total := decimal.Zero
	for _, ci := range req.Items {
		if ci.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be > 0 for product %s", ci.ProductID)
		}
		if ci.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("unit price must not be negative for product %s", ci.ProductID)
		}
		productID, err := uuid.Parse(ci.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product_id: %w", err)
		}

		lineTotal := ci.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
		total = total.Add(lineTotal)

		items = append(items, &Item{
			ProductID:  productID,
			Quantity:   ci.Quantity,
			UnitPrice:  ci.UnitPrice,
			TotalPrice: lineTotal,
		})
	}

	saleDate := req.SaleDate
	if saleDate.IsZero() {
		saleDate = time.Now().UTC()
	}

	sl := &Sale{
		CustomerName:    req.CustomerName,
		ReferenceNumber: req.ReferenceNumber,
		SaleDate:        saleDate,
		TotalAmount:     total,
		PaymentMethod:   method,
		Status:          StatusCompleted,
		Notes:           req.Notes,
		IdempotencyKey:  req.IdempotencyKey,
	}

	_, err := composite.Create(ctx, composite.Writes{
		InsertHeader: func(ctx context.Context) (string, error) {
			if err := s.repo.InsertSale(ctx, sl); err != nil {
				return "", err
			}
			return sl.ID.String(), nil
		},
		InsertItems: func(ctx context.Context, headerID string) error {
			for _, item := range items {
				item.SaleID = sl.ID
			}
			return s.repo.InsertItems(ctx, sl.ID, items)
		},
		DeleteHeader: func(ctx context.Context, headerID string) error {
			return s.repo.DeleteSale(ctx, headerID)
		},
	})
	if err != nil {
		return nil, err
	}
	sl.Items = items
	return sl, nil
}

func (s *service) GetSale(ctx context.Context, id string) (*Sale, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListSales(ctx context.Context) ([]*Sale, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) error {
	status := Status(req.Status)
	switch status {
	case StatusCompleted, StatusPending, StatusCancelled:
	default:
		return fmt.Errorf("invalid status %q", req.Status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) DeleteSale(ctx context.Context, id string) error {
	if err := s.repo.DeleteItems(ctx, id); err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return s.repo.DeleteSale(ctx, id)
}
