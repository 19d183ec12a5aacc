package composite

import "context"

// Writes describes the storage steps behind one header-plus-items aggregate.
// InsertHeader persists the header and returns the store-assigned identifier.
// InsertItems persists the line items stamped with that identifier as a single
// batch. DeleteHeader is the compensating action when InsertItems fails.
type Writes struct {
	InsertHeader func(ctx context.Context) (string, error)
	InsertItems  func(ctx context.Context, headerID string) error
	DeleteHeader func(ctx context.Context, headerID string) error
}

// Create persists a header and its line items as one logical unit over a store
// that only offers per-row operations. The header is written first; when the
// item batch fails the just-created header is deleted again so no orphan is
// left behind. The caller always receives the original write failure, never
// the outcome of the compensating delete, though a failed delete is reported
// as a distinct error type so orphaned headers stay observable.
func Create(ctx context.Context, w Writes) (string, error) {
	headerID, err := w.InsertHeader(ctx)
	if err != nil {
		return "", &HeaderError{Err: err}
	}

	if err := w.InsertItems(ctx, headerID); err != nil {
		if delErr := w.DeleteHeader(ctx, headerID); delErr != nil {
			return "", &CompensationError{HeaderID: headerID, ItemsErr: err, DeleteErr: delErr}
		}
		return "", &ItemsError{HeaderID: headerID, Err: err}
	}

	return headerID, nil
}
