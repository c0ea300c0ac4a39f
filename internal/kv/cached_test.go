package kv_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iexpense/internal/cache"
	"iexpense/internal/kv"
	"iexpense/internal/kv/memory"
)

type countingStore struct {
	kv.Store
	gets   int
	setErr error
}

func (c *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	c.gets++
	return c.Store.Get(ctx, key)
}

func (c *countingStore) Set(ctx context.Context, key string, value []byte) error {
	if c.setErr != nil {
		return c.setErr
	}
	return c.Store.Set(ctx, key, value)
}

func TestCachedServesRepeatedReadsFromCache(t *testing.T) {
	ctx := context.Background()
	backend := &countingStore{Store: memory.New()}
	require.NoError(t, backend.Set(ctx, "k", []byte("v1")))

	c := kv.NewCached(backend, cache.NewLRUCache[[]byte](8, time.Minute))

	for i := 0; i < 3; i++ {
		v, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v1", string(v))
	}
	assert.Equal(t, 1, backend.gets)
}

func TestCachedWriteThrough(t *testing.T) {
	ctx := context.Background()
	backend := &countingStore{Store: memory.New()}
	c := kv.NewCached(backend, cache.NewLRUCache[[]byte](8, time.Minute))

	require.NoError(t, c.Set(ctx, "k", []byte("v2")))
	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(v))
	assert.Equal(t, 0, backend.gets)

	stored, err := backend.Store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(stored))
}

func TestCachedFailedWriteDropsCachedValue(t *testing.T) {
	ctx := context.Background()
	backend := &countingStore{Store: memory.New()}
	c := kv.NewCached(backend, cache.NewLRUCache[[]byte](8, time.Minute))
	require.NoError(t, c.Set(ctx, "k", []byte("old")))

	backend.setErr = errors.New("disk full")
	require.Error(t, c.Set(ctx, "k", []byte("new")))

	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "old", string(v))
	assert.Equal(t, 1, backend.gets)
}

func TestCachedDelete(t *testing.T) {
	ctx := context.Background()
	c := kv.NewCached(memory.New(), cache.NewLRUCache[[]byte](8, time.Minute))
	require.NoError(t, c.Set(ctx, "k", []byte("v")))
	require.NoError(t, c.Delete(ctx, "k"))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}
