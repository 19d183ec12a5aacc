package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stocklane/stocklane-backend/internal/composite"
)

// Service defines purchase business logic.
type Service interface {
	// CreatePurchase validates the request, computes line and header totals,
	// and persists the header-plus-items aggregate through the composite
	// write coordinator.
	CreatePurchase(ctx context.Context, req CreatePurchaseRequest) (*Purchase, error)

	// GetPurchase retrieves a full purchase with its items.
	GetPurchase(ctx context.Context, id string) (*Purchase, error)

	// ListPurchases returns all purchases, newest first.
	ListPurchases(ctx context.Context) ([]*Purchase, error)

	// UpdateStatus changes the order status.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) error

	// UpdatePaymentStatus changes the payment status.
	UpdatePaymentStatus(ctx context.Context, id string, req UpdatePaymentStatusRequest) error

	// DeletePurchase removes a purchase and its items. Items go first since
	// the store does not cascade deletes.
	DeletePurchase(ctx context.Context, id string) error
}

type service struct{ repo Repository }

// NewService creates a new purchase service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreatePurchase(ctx context.Context, req CreatePurchaseRequest) (*Purchase, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("purchase must contain at least one item")
	}
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("invalid supplier_id: %w", err)
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

	purchaseDate := req.PurchaseDate
	if purchaseDate.IsZero() {
		purchaseDate = time.Now().UTC()
	}

	p := &Purchase{
		SupplierID:      supplierID,
		ReferenceNumber: req.ReferenceNumber,
		PurchaseDate:    purchaseDate,
		TotalAmount:     total,
		Status:          StatusPending,
		PaymentStatus:   PaymentUnpaid,
		Notes:           req.Notes,
		IdempotencyKey:  req.IdempotencyKey,
	}

	_, err = composite.Create(ctx, composite.Writes{
		InsertHeader: func(ctx context.Context) (string, error) {
			if err := s.repo.InsertPurchase(ctx, p); err != nil {
				return "", err
			}
			return p.ID.String(), nil
		},
		InsertItems: func(ctx context.Context, headerID string) error {
			for _, item := range items {
				item.PurchaseID = p.ID
			}
			return s.repo.InsertItems(ctx, p.ID, items)
		},
		DeleteHeader: func(ctx context.Context, headerID string) error {
			return s.repo.DeletePurchase(ctx, headerID)
		},
	})
	if err != nil {
		return nil, err
	}
	p.Items = items
	return p, nil
}

func (s *service) GetPurchase(ctx context.Context, id string) (*Purchase, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListPurchases(ctx context.Context) ([]*Purchase, error) {
	return s.repo.List(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) error {
	status := Status(req.Status)
	switch status {
	case StatusPending, StatusReceived, StatusCancelled:
	default:
		return fmt.Errorf("invalid status %q", req.Status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) UpdatePaymentStatus(ctx context.Context, id string, req UpdatePaymentStatusRequest) error {
	status := PaymentStatus(req.PaymentStatus)
	switch status {
	case PaymentUnpaid, PaymentPaid, PaymentPartial, PaymentRefunded:
	default:
		return fmt.Errorf("invalid payment status %q", req.PaymentStatus)
	}
	return s.repo.UpdatePaymentStatus(ctx, id, status)
}

func (s *service) DeletePurchase(ctx context.Context, id string) error {
	if err := s.repo.DeleteItems(ctx, id); err != nil {
		return fmt.Errorf("delete purchase items: %w", err)
	}
	return s.repo.DeletePurchase(ctx, id)
}
