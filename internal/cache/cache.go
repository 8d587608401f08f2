// internal/cache/cache.go
package cache

import (
	"context"
	"sync"
	"time"

	"goldvault/internal/domain"
	"goldvault/internal/repository"
)

// PriceCache is the injected cache used by the snapshot price path: read the
// latest entry, check it against the freshness predicate, store refreshed
// values. Implementations decide where entries live.
type PriceCache interface {
	// Latest returns the most recent cached snapshot, or util.ErrNotFound
	// when the cache is empty.
	Latest(ctx context.Context) (*domain.GoldPrice, error)
	// Store records a refreshed snapshot.
	Store(ctx context.Context, price *domain.GoldPrice) error
	// Fresh reports whether a snapshot is still within the freshness window.
	Fresh(price *domain.GoldPrice) bool
}

// snapshotCache keeps snapshots in the append-only gold price history, so the
// cache doubles as the historical record.
type snapshotCache struct {
	q      repository.DBExecutor
	prices repository.GoldPriceRepository
	window time.Duration
	now    func() time.Time
}

// NewSnapshotCache creates a PriceCache backed by the gold price repository.
func NewSnapshotCache(q repository.DBExecutor, prices repository.GoldPriceRepository, window time.Duration) PriceCache {
	return &snapshotCache{
		q:      q,
		prices: prices,
		window: window,
		now:    time.Now,
	}
}

func (c *snapshotCache) Latest(ctx context.Context) (*domain.GoldPrice, error) {
	return c.prices.LatestSnapshot(ctx, c.q)
}

func (c *snapshotCache) Store(ctx context.Context, price *domain.GoldPrice) error {
	return c.prices.InsertSnapshot(ctx, c.q, price)
}

func (c *snapshotCache) Fresh(price *domain.GoldPrice) bool {
	return c.now().UTC().Sub(price.Timestamp.UTC()) < c.window
}

// Memory is a single-value in-process TTL cache. Concurrent cache misses may
// still race to refill it; last write wins.
type Memory[T any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	value    T
	storedAt time.Time
	set      bool
}

// NewMemory creates an empty Memory cache with the given TTL.
func NewMemory[T any](ttl time.Duration) *Memory[T] {
	return &Memory[T]{ttl: ttl, now: time.Now}
}

// Get returns the cached value if present and fresh.
func (c *Memory[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.set || !c.Fresh(c.storedAt) {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Put stores a value and resets its age.
func (c *Memory[T]) Put(value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
	c.storedAt = c.now()
	c.set = true
}

// Fresh reports whether a value stored at the given time is within the TTL.
func (c *Memory[T]) Fresh(storedAt time.Time) bool {
	return c.now().Sub(storedAt) < c.ttl
}
