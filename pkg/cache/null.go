package cache

import "context"

// NullCache stores nothing, so every lookup goes upstream. `statcards render
// --no-cache` and runners built without a cache use it.
type NullCache struct{}

func NewNullCache() Cache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (*NullCache) Set(context.Context, string, []byte) error       { return nil }
func (*NullCache) Delete(context.Context, string) error            { return nil }
func (*NullCache) Close() error                                    { return nil }

var _ Cache = (*NullCache)(nil)
