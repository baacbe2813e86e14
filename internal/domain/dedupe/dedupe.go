// Package dedupe defines the interface for idempotency tracking.
package dedupe

import (
	"context"
	"sync"
	"sync/atomic"
)

// Deduper records seen matchup IDs to ensure at-most-once accumulation.
type Deduper interface {
	// SeenAndRecord atomically checks if id was seen and records it if not.
	// Returns true if id was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord removes an ID from the seen list, allowing it to be
	// re-ingested. Used when a misrecorded result is corrected: the bad
	// matchup is backed out and the fixed one replayed. Returns true if
	// the ID was present, false if it was never recorded.
	Unrecord(ctx context.Context, id string) bool

	Size() int64
}

// inMemoryDeduper implements Deduper with a plain set. The full matchup
// history of a 12-team league is a few thousand IDs, so there is no
// eviction.
type inMemoryDeduper struct {
	mu   sync.RWMutex
	seen map[string]struct{}
	size atomic.Int64
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	cfg := &config{initialCapacity: 4096}
	for _, opt := range opts {
		opt(cfg)
	}

	return &inMemoryDeduper{
		seen: make(map[string]struct{}, cfg.initialCapacity),
	}
}

// SeenAndRecord atomically checks if id was seen and records it if not.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[id]; exists {
		return true
	}
	d.seen[id] = struct{}{}
	d.size.Add(1)
	return false
}

// Unrecord removes an ID from the seen list and reports whether it was
// present.
func (d *inMemoryDeduper) Unrecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.seen[id]; !exists {
		return false
	}
	delete(d.seen, id)
	d.size.Add(-1)
	return true
}

// Size returns the current number of recorded IDs.
func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}
