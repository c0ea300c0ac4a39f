package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iexpense/internal/kv"
	"iexpense/internal/kv/memory"
)

type countingStore struct {
	kv.Store
	writes int
	fail   bool
}

func (c *countingStore) Set(ctx context.Context, key string, value []byte) error {
	c.writes++
	if c.fail {
		return errors.New("read-only")
	}
	return c.Store.Set(ctx, key, value)
}

func TestAddRemoveContains(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	s := New(ctx, backend, "")

	s.Add(ctx, "whistler")
	s.Add(ctx, "aspen")

	assert.True(t, s.Contains("aspen"))
	assert.False(t, s.Contains("zermatt"))
	assert.Equal(t, []string{"aspen", "whistler"}, s.List())

	s.Remove(ctx, "aspen")
	assert.False(t, s.Contains("aspen"))

	raw, err := backend.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.JSONEq(t, `["whistler"]`, string(raw))
}

func TestPersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	s := New(ctx, backend, "Resorts")
	s.Add(ctx, "b")
	s.Add(ctx, "a")

	reloaded := New(ctx, backend, "Resorts")
	assert.Equal(t, []string{"a", "b"}, reloaded.List())
	assert.Equal(t, 2, reloaded.Len())
}

func TestNoWriteWhenUnchanged(t *testing.T) {
	ctx := context.Background()
	backend := &countingStore{Store: memory.New()}
	s := New(ctx, backend, "")

	s.Add(ctx, "a")
	s.Add(ctx, "a")
	s.Remove(ctx, "missing")

	assert.Equal(t, 1, backend.writes)
}

func TestMalformedSlotLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	require.NoError(t, backend.Set(ctx, DefaultKey, []byte(`{"not":"a list"}`)))

	s := New(ctx, backend, "")
	assert.Equal(t, 0, s.Len())
}

func TestSaveErrorIsReturnedButMutationKept(t *testing.T) {
	ctx := context.Background()
	backend := &countingStore{Store: memory.New(), fail: true}
	s := New(ctx, backend, "")

	s.Add(ctx, "a")
	assert.True(t, s.Contains("a"))
	assert.Error(t, s.Save(ctx))

	s.Load(ctx)
	assert.False(t, s.Contains("a"))
}
