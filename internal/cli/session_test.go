package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iexpense/internal/config"
	"iexpense/internal/core"
	"iexpense/internal/log"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	return &config.Config{
		Backend:       backend,
		SQLiteDBPath:  filepath.Join(t.TempDir(), "iexpense.db"),
		LedgerKey:     "Items",
		FavoritesKey:  "Favorites",
		ActivitiesKey: "Activities",
		CacheTTL:      time.Minute,
		Currency:      "USD",
		LogLevel:      "info",
	}
}

func quietLogger() *log.Logger {
	return log.New(log.Config{Output: &bytes.Buffer{}})
}

func TestSessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, "sqlite")

	s, err := Open(ctx, cfg, quietLogger())
	require.NoError(t, err)
	s.Ledger.Append(ctx, core.NewExpenseRecord("Coffee", core.Personal, decimal.RequireFromString("4.50")))
	s.Ledger.Append(ctx, core.NewExpenseRecord("Laptop", core.Business, decimal.RequireFromString("999.00")))
	require.NoError(t, s.Ledger.RemoveAt(ctx, 0))
	s.Favorites.Add(ctx, "whistler")
	s.Activities.Append(ctx, "Run", "")
	require.NoError(t, s.Close())

	restarted, err := Open(ctx, cfg, quietLogger())
	require.NoError(t, err)
	defer restarted.Close()

	items := restarted.Ledger.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Laptop", items[0].Name)
	assert.True(t, restarted.Favorites.Contains("whistler"))
	assert.Len(t, restarted.Activities.Items(), 1)
}

func TestSessionWithCachedMemoryBackend(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, "memory")
	cfg.CacheSize = 8

	s, err := Open(ctx, cfg, quietLogger())
	require.NoError(t, err)
	defer s.Close()

	s.Ledger.Append(ctx, core.NewExpenseRecord("Coffee", core.Personal, decimal.RequireFromString("4.50")))
	assert.Len(t, s.Ledger.Load(ctx), 1)
}

func TestOpenRejectsBadBackend(t *testing.T) {
	cfg := testConfig(t, "postgres")
	_, err := Open(context.Background(), cfg, quietLogger())
	assert.Error(t, err)
}

func TestSetupLoggerInstallsDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger("debug", &buf)
	logger.Debug("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestOpenFromEnvValidatesOnOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	t.Setenv("LEDGER_BACKEND", "postgres")
	t.Setenv("SQLITE_DB_PATH", filepath.Join(dir, "iexpense.db"))

	_, err := OpenFromEnv(context.Background(), quietLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")

	t.Setenv("LEDGER_BACKEND", "sqlite")
	s, err := OpenFromEnv(context.Background(), quietLogger())
	require.NoError(t, err)
	defer s.Close()
	assert.DirExists(t, dir)
}
