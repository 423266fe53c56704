// Package cache provides the result cache shared by all card requests.
//
// Values are serialized normalized statistics (never rendered SVG). Every
// entry shares one time-to-live and one capacity bound; whichever of LRU
// eviction or expiry comes first removes it. Entries are replaced wholesale
// and never mutated in place.
//
// Concurrent misses for the same key are not coalesced: each caller fetches
// upstream on its own and the last write wins.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
)

// Cache is a byte store keyed by request fingerprint.
type Cache interface {
	// Get returns the stored bytes and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key, replacing any previous value.
	Set(ctx context.Context, key string, data []byte) error

	Delete(ctx context.Context, key string) error
	Close() error
}

// Load decodes the JSON value stored under key into a T. An undecodable
// entry is dropped and reported as a miss.
func Load[T any](ctx context.Context, c Cache, key string) (T, bool) {
	var v T
	data, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		_ = c.Delete(ctx, key)
		return v, false
	}
	return v, true
}

// Store encodes v as JSON and stores it under key.
func Store(ctx context.Context, c Cache, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.Set(ctx, key, data)
}
