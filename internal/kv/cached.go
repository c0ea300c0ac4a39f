package kv

import (
	"context"
	"errors"
	"log/slog"

	"iexpense/internal/cache"
)

// Cached is a read-through, write-through decorator. Reads of a key are
// served from the cache once loaded; writes go to the backend first and only
// update the cache when the backend accepted them.
type Cached struct {
	next  Store
	cache cache.Cache[[]byte]
}

var _ Store = (*Cached)(nil)

func NewCached(next Store, c cache.Cache[[]byte]) *Cached {
	return &Cached{next: next, cache: c}
}

func (c *Cached) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := c.cache.Get(key); ok {
		slog.DebugContext(ctx, "kv cache hit", "key", key)
		return clone(v), nil
	}

	v, err := c.next.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.cache.Delete(key)
		}
		return nil, err
	}
	c.cache.Set(key, clone(v))
	return v, nil
}

func (c *Cached) Set(ctx context.Context, key string, value []byte) error {
	if err := c.next.Set(ctx, key, value); err != nil {
		c.cache.Delete(key)
		return err
	}
	c.cache.Set(key, clone(value))
	return nil
}

func (c *Cached) Delete(ctx context.Context, key string) error {
	c.cache.Delete(key)
	return c.next.Delete(ctx, key)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
