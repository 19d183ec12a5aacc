package purchase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines data access for purchases. The store offers per-table,
// per-row operations only; there is no multi-table transaction available to
// the caller, which is why creation goes through the composite coordinator.
type Repository interface {
	// InsertPurchase persists the header and fills in the store-assigned
	// identifier and timestamps.
	InsertPurchase(ctx context.Context, p *Purchase) error

	// InsertItems persists all line items of one purchase as a single batch.
	InsertItems(ctx context.Context, purchaseID uuid.UUID, items []*Item) error

	// DeletePurchase removes a header row. Line items are not cascaded.
	DeletePurchase(ctx context.Context, id string) error

	// DeleteItems removes all line items belonging to a purchase.
	DeleteItems(ctx context.Context, purchaseID string) error

	// GetByID retrieves a purchase with its items and product info.
	GetByID(ctx context.Context, id string) (*Purchase, error)

	// List returns all purchases with supplier names, newest first.
	List(ctx context.Context) ([]*Purchase, error)

	UpdateStatus(ctx context.Context, id string, status Status) error
	UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) error

	// DeleteOrphanedHeaders removes headers with no line items created before
	// the cutoff; used by the reconciliation sweeper.
	DeleteOrphanedHeaders(ctx context.Context, olderThan time.Time) (int64, error)
}
