package cache

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/matzehuels/statcards/pkg/observability"
)

// Defaults for the in-memory cache.
const (
	DefaultTTL      = 2 * time.Hour
	DefaultCapacity = 16384
)

// MemoryCache is an in-process LRU with a shared TTL. It is safe for
// concurrent use; values are copied in and out so callers can never alias
// a stored entry.
type MemoryCache struct {
	lru *expirable.LRU[string, []byte]
	ttl time.Duration
}

// NewMemoryCache creates a cache holding at most capacity entries, each
// expiring ttl after it was written. Non-positive arguments take the
// defaults.
func NewMemoryCache(capacity int, ttl time.Duration) *MemoryCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		lru: expirable.NewLRU[string, []byte](capacity, nil, ttl),
		ttl: ttl,
	}
}

// TTL returns the time-to-live applied to every entry.
func (c *MemoryCache) TTL() time.Duration { return c.ttl }

// Len returns the number of live entries.
func (c *MemoryCache) Len() int { return c.lru.Len() }

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok := c.lru.Get(key)
	if !ok {
		observability.Cache().OnCacheMiss(ctx, KeyType(key))
		return nil, false, nil
	}
	observability.Cache().OnCacheHit(ctx, KeyType(key))
	return clone(data), true, nil
}

func (c *MemoryCache) Set(ctx context.Context, key string, data []byte) error {
	c.lru.Add(key, clone(data))
	observability.Cache().OnCacheSet(ctx, KeyType(key), len(data))
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

// Close drops every entry.
func (c *MemoryCache) Close() error {
	c.lru.Purge()
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append(make([]byte, 0, len(b)), b...)
}

// KeyType returns the source prefix of a key ("github:activity:octocat:year"
// becomes "github:activity"). Subjects never leak into metrics labels.
func KeyType(key string) string {
	parts := strings.SplitN(key, ":", 3)
	if len(parts) < 2 {
		return parts[0]
	}
	return parts[0] + ":" + parts[1]
}

var _ Cache = (*MemoryCache)(nil)
