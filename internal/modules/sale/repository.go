package sale

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines data access for sales. As with purchases, the store
// offers no multi-table transaction, so creation goes through the composite
// coordinator.
type Repository interface {
	// InsertSale persists the header and fills in the store-assigned
	// identifier and timestamps.
	InsertSale(ctx context.Context, s *Sale) error

	// InsertItems persists all line items of one sale as a single batch.
	InsertItems(ctx context.Context, saleID uuid.UUID, items []*Item) error

	// DeleteSale removes a header row. Line items are not cascaded.
	DeleteSale(ctx context.Context, id string) error

	// DeleteItems removes all line items belonging to a sale.
	DeleteItems(ctx context.Context, saleID string) error

	// GetByID retrieves a sale with its items and product info.
	GetByID(ctx context.Context, id string) (*Sale, error)

	// List returns all sales, newest first.
	List(ctx context.Context) ([]*Sale, error)

	UpdateStatus(ctx context.Context, id string, status Status) error

	// DeleteOrphanedHeaders removes headers with no line items created before
	// the cutoff; used by the reconciliation sweeper.
	DeleteOrphanedHeaders(ctx context.Context, olderThan time.Time) (int64, error)
}
