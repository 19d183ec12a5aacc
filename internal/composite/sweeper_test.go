package composite

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrphanStore struct {
	removed int64
	err     error
	calls   int
	cutoff  time.Time
}

func (f *fakeOrphanStore) DeleteOrphanedHeaders(ctx context.Context, olderThan time.Time) (int64, error) {
	f.calls++
	f.cutoff = olderThan
	return f.removed, f.err
}

func TestSweepOnceDeletesWithGracePeriod(t *testing.T) {
	store := &fakeOrphanStore{removed: 2}
	s := NewSweeper(map[string]OrphanStore{"purchases": store},
		time.Minute, time.Hour, log.New(io.Discard, "", 0))

	before := time.Now().Add(-time.Hour)
	s.SweepOnce(context.Background())
	after := time.Now().Add(-time.Hour)

	require.Equal(t, 1, store.calls)
	assert.False(t, store.cutoff.Before(before))
	assert.False(t, store.cutoff.After(after))
}

func TestSweepOnceContinuesPastFailingStore(t *testing.T) {
	broken := &fakeOrphanStore{err: errors.New("db down")}
	healthy := &fakeOrphanStore{removed: 1}
	s := NewSweeper(map[string]OrphanStore{"a": broken, "b": healthy},
		time.Minute, time.Hour, log.New(io.Discard, "", 0))

	s.SweepOnce(context.Background())

	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 1, healthy.calls)
}

func TestRunStopsOnCancel(t *testing.T) {
	store := &fakeOrphanStore{}
	s := NewSweeper(map[string]OrphanStore{"a": store},
		time.Millisecond, 0, log.New(io.Discard, "", 0))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancel")
	}
	assert.Greater(t, store.calls, 0)
}
