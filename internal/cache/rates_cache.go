package cache

import (
	"sync"
	"time"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
)

// RatesCache holds the most recent cross-rate table. Tables are replaced whole
// and never mutated after Store, so callers may read a returned table without locking.
type RatesCache struct {
	mu         sync.RWMutex
	table      *domain.RateTable
	staleAfter time.Duration
	now        func() time.Time
}

// Option configures a RatesCache.
type Option func(*RatesCache)

// WithClock overrides the time source used for freshness checks.
func WithClock(now func() time.Time) Option {
	return func(c *RatesCache) {
		c.now = now
	}
}

// NewRatesCache creates an empty cache whose tables go stale after staleAfter.
func NewRatesCache(staleAfter time.Duration, opts ...Option) *RatesCache {
	c := &RatesCache{
		staleAfter: staleAfter,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached table, or nil when empty, and whether it is still fresh.
func (c *RatesCache) Get() (*domain.RateTable, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.table == nil {
		return nil, false
	}
	return c.table, c.table.IsFresh(c.now(), c.staleAfter)
}

// Store replaces the cached table unless the current one was fetched later.
// It reports whether the table was stored.
func (c *RatesCache) Store(table *domain.RateTable) bool {
	if table == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.table != nil && c.table.FetchedAt.After(table.FetchedAt) {
		return false
	}
	c.table = table
	return true
}

// Clear empties the cache.
func (c *RatesCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.table = nil
}

// IsValid reports whether a fresh table is cached.
func (c *RatesCache) IsValid() bool {
	_, fresh := c.Get()
	return fresh
}

// Now returns the current time from the cache clock.
func (c *RatesCache) Now() time.Time {
	return c.now()
}

// StaleAfter returns the freshness threshold.
func (c *RatesCache) StaleAfter() time.Duration {
	return c.staleAfter
}
