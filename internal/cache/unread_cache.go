package cache

import (
	"context"
	"time"
)

// UnreadCache holds per-user unread totals so the aggregator does not
// rescan every thread on every request. Entries are invalidated whenever
// a message addressed to the user is appended or read.
type UnreadCache interface {
	// Get returns the cached total and whether it was present.
	Get(ctx context.Context, userID string) (int, bool, error)
	Set(ctx context.Context, userID string, count int) error
	Invalidate(ctx context.Context, userID string) error
}

// DefaultTTL bounds staleness if an invalidation is ever missed.
const DefaultTTL = 5 * time.Minute

// Noop disables caching; every aggregation recomputes from the store.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) Get(ctx context.Context, userID string) (int, bool, error) {
	return 0, false, nil
}

func (Noop) Set(ctx context.Context, userID string, count int) error {
	return nil
}

func (Noop) Invalidate(ctx context.Context, userID string) error {
	return nil
}
