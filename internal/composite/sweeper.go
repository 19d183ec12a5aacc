package composite

import (
	"context"
	"log"
	"time"
)

// OrphanStore deletes headers that have no line items and were created before
// the cutoff, returning the number of rows removed.
type OrphanStore interface {
	DeleteOrphanedHeaders(ctx context.Context, olderThan time.Time) (int64, error)
}

// Sweeper periodically removes orphaned headers left behind when a
// compensating delete failed. The grace period keeps it from racing an
// in-flight create between its two insert steps.
type Sweeper struct {
	stores   map[string]OrphanStore
	interval time.Duration
	grace    time.Duration
	logger   *log.Logger
}

func NewSweeper(stores map[string]OrphanStore, interval, grace time.Duration, logger *log.Logger) *Sweeper {
	return &Sweeper{
		stores:   stores,
		interval: interval,
		grace:    grace,
		logger:   logger,
	}
}

// Run sweeps on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce deletes orphaned headers older than the grace period from every
// registered store. A failing store is logged and skipped; the remaining
// stores are still swept.
func (s *Sweeper) SweepOnce(ctx context.Context) {
	cutoff := time.Now().Add(-s.grace)
	for name, store := range s.stores {
		removed, err := store.DeleteOrphanedHeaders(ctx, cutoff)
		if err != nil {
			s.logger.Printf("WARN: sweep %s: %v", name, err)
			continue
		}
		if removed > 0 {
			s.logger.Printf("sweep %s: removed %d orphaned header(s)", name, removed)
		}
	}
}
