package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is the capacity callers use when none is configured.
const DefaultCapacity = 20

// Cache is a fixed-capacity least-recently-used cache.
// It is safe for concurrent use; concurrent misses on one key may both
// write, and the last write wins.
type Cache[V any] struct {
	lru *lru.Cache[string, V]
}

// New creates a Cache holding at most capacity entries.
func New[V any](capacity int) (*Cache[V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("cache: capacity must be positive, got %d", capacity)
	}
	l, err := lru.New[string, V](capacity)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Cache[V]{lru: l}, nil
}

// Get returns the value for key and marks it most recently used.
// A miss has no side effects.
func (c *Cache[V]) Get(key string) (V, bool) {
	return c.lru.Get(key)
}

// Put inserts or replaces the value for key and marks it most recently used,
// evicting the least recently used entry when capacity is exceeded.
func (c *Cache[V]) Put(key string, value V) {
	c.lru.Add(key, value)
}

// Contains reports whether key is cached without touching its recency.
func (c *Cache[V]) Contains(key string) bool {
	return c.lru.Contains(key)
}

// Keys returns the cached keys from least to most recently used.
func (c *Cache[V]) Keys() []string {
	return c.lru.Keys()
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	return c.lru.Len()
}
