package backend

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iexpense/internal/config"
	"iexpense/internal/kv"
	"iexpense/internal/kv/memory"
	"iexpense/internal/kv/sqlite"
	"iexpense/internal/log"
)

func quietFactory() Factory {
	return NewFactory(log.New(log.Config{Output: &bytes.Buffer{}}))
}

func TestCreateMemoryBackend(t *testing.T) {
	ctx := context.Background()
	seed := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(seed, "Items.json"), []byte(`[]`), 0o644))

	res, err := quietFactory().CreateBackend(ctx, Config{Type: MemoryBackend, SeedDirectory: seed})
	require.NoError(t, err)
	defer res.Close()

	assert.IsType(t, &memory.Store{}, res.Store)
	got, err := res.Store.Get(ctx, "Items")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
	assert.NoError(t, res.Close())
}

func TestCreateSQLiteBackend(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "iexpense.db")

	res, err := quietFactory().CreateBackend(ctx, Config{Type: SQLiteBackend, SQLiteDBPath: path})
	require.NoError(t, err)
	defer res.Close()

	assert.IsType(t, &sqlite.Store{}, res.Store)
	require.NoError(t, res.Store.Set(ctx, "k", []byte("v")))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestCreateBackendWithCache(t *testing.T) {
	res, err := quietFactory().CreateBackend(context.Background(), Config{
		Type:      MemoryBackend,
		CacheSize: 4,
		CacheTTL:  time.Minute,
	})
	require.NoError(t, err)
	assert.IsType(t, &kv.Cached{}, res.Store)
}

func TestCreateBackendRejectsInvalidConfig(t *testing.T) {
	ctx := context.Background()
	f := quietFactory()

	_, err := f.CreateBackend(ctx, Config{Type: "sheets"})
	assert.Error(t, err)

	_, err = f.CreateBackend(ctx, Config{Type: SQLiteBackend})
	assert.Error(t, err)

	_, err = f.CreateBackend(ctx, Config{Type: MemoryBackend, CacheSize: -1})
	assert.Error(t, err)
}

func TestFromAppConfig(t *testing.T) {
	_, err := FromAppConfig(nil)
	assert.Error(t, err)

	_, err = FromAppConfig(&config.Config{Backend: "postgres"})
	assert.Error(t, err)

	cfg, err := FromAppConfig(&config.Config{
		Backend:      "sqlite",
		SQLiteDBPath: "./data/x.db",
		CacheSize:    3,
		CacheTTL:     time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, Config{Type: SQLiteBackend, SQLiteDBPath: "./data/x.db", CacheSize: 3, CacheTTL: time.Second}, cfg)
}

func TestBackendTypes(t *testing.T) {
	assert.Equal(t, []string{"sqlite", "memory"}, GetBackendTypeStrings())
	assert.True(t, MemoryBackend.IsValid())
	assert.False(t, BackendType("sheets").IsValid())

	var nilResult *BackendResult
	assert.NoError(t, nilResult.Close())
}
