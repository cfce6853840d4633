// Package cache holds the small time-bounded caches the scraping pipeline
// is allowed to share between invocations. Consistency is last-writer-wins;
// nothing here needs stronger synchronization.
package cache

import (
	"sync"
	"time"
)

// Clock lets tests control expiry.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

type entry[T any] struct {
	value     T
	fetchedAt time.Time
}

// TTL is a keyed in-memory cache whose entries expire after a fixed
// duration.
type TTL[T any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	clock   Clock
	entries map[string]entry[T]
}

func NewTTL[T any](ttl time.Duration, clock Clock) *TTL[T] {
	if clock == nil {
		clock = SystemClock()
	}
	return &TTL[T]{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]entry[T]),
	}
}

func (c *TTL[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.clock.Now().Sub(e.fetchedAt) >= c.ttl {
		var zero T
		return zero, false
	}
	return e.value, true
}

func (c *TTL[T]) Set(key string, value T) {
	c.mu.Lock()
	c.entries[key] = entry[T]{value: value, fetchedAt: c.clock.Now()}
	c.mu.Unlock()
}
