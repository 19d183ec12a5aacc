package composite

import "fmt"

// HeaderError reports a failed header insert. Nothing was created.
type HeaderError struct{ Err error }

func (e *HeaderError) Error() string { return "insert header: " + e.Err.Error() }
func (e *HeaderError) Unwrap() error { return e.Err }

// ItemsError reports a failed line-item insert after the header had already
// been created. The compensating delete succeeded, so the header is gone.
type ItemsError struct {
	HeaderID string
	Err      error
}

func (e *ItemsError) Error() string { return "insert items: " + e.Err.Error() }
func (e *ItemsError) Unwrap() error { return e.Err }

// CompensationError reports a failed line-item insert whose compensating
// header delete also failed, leaving an orphaned header behind.
type CompensationError struct {
	HeaderID  string
	ItemsErr  error
	DeleteErr error
}

func (e *CompensationError) Error() string {
	return fmt.Sprintf("insert items: %v (header %s orphaned, compensating delete failed: %v)",
		e.ItemsErr, e.HeaderID, e.DeleteErr)
}

// Unwrap returns the item-write failure so callers observe the original
// error regardless of the compensation outcome.
func (e *CompensationError) Unwrap() error { return e.ItemsErr }
