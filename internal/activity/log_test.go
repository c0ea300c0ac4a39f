package activity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iexpense/internal/kv/memory"
)

func TestAppendPersists(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	l := New(ctx, backend, "")

	run := l.Append(ctx, "Run", "5k along the river")
	read := l.Append(ctx, "Read", "")

	require.NotEmpty(t, run.ID)
	assert.NotEqual(t, run.ID, read.ID)

	reloaded := New(ctx, backend, "")
	items := reloaded.Items()
	require.Len(t, items, 2)
	assert.Equal(t, run, items[0])
	assert.Equal(t, read, items[1])
}

func TestLoadCorruptYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	require.NoError(t, backend.Set(ctx, DefaultKey, []byte(`42`)))

	l := New(ctx, backend, "")
	assert.Empty(t, l.Items())
	assert.NotNil(t, l.Items())
}
