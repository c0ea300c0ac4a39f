package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Rhymond/go-money"

	"iexpense/internal/log"
)

type Config struct {
	// Storage backend: "memory" or "sqlite"
	Backend string

	// Database
	SQLiteDBPath string

	// Memory backend seed directory (optional)
	MemorySeedDir string

	// Slot names
	LedgerKey     string
	FavoritesKey  string
	ActivitiesKey string

	// Read-through cache in front of the backend; size 0 disables it
	CacheSize int
	CacheTTL  time.Duration

	// Presentation
	Currency string

	LogLevel string
}

func Load() *Config {
	return &Config{
		Backend:       getEnv("LEDGER_BACKEND", "sqlite"),
		SQLiteDBPath:  getEnv("SQLITE_DB_PATH", "./data/iexpense.db"),
		MemorySeedDir: getEnv("MEMORY_SEED_DIR", ""),

		LedgerKey:     getEnv("LEDGER_SLOT_KEY", "Items"),
		FavoritesKey:  getEnv("FAVORITES_SLOT_KEY", "Favorites"),
		ActivitiesKey: getEnv("ACTIVITIES_SLOT_KEY", "Activities"),

		CacheSize: getEnvInt("CACHE_SIZE", 0),
		CacheTTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),

		Currency: strings.ToUpper(getEnv("CURRENCY", money.USD)),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"memory", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.Backend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, validBackends))
	}

	if c.Backend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.Backend == "memory" && c.MemorySeedDir != "" {
		if info, err := os.Stat(c.MemorySeedDir); err != nil || !info.IsDir() {
			errors = append(errors, fmt.Sprintf("memory seed directory does not exist: %s", c.MemorySeedDir))
		}
	}

	slots := map[string]string{
		"ledger":     c.LedgerKey,
		"favorites":  c.FavoritesKey,
		"activities": c.ActivitiesKey,
	}
	seen := make(map[string]string)
	for _, name := range []string{"ledger", "favorites", "activities"} {
		key := strings.TrimSpace(slots[name])
		if key == "" {
			errors = append(errors, fmt.Sprintf("%s slot key cannot be empty", name))
			continue
		}
		if other, ok := seen[key]; ok {
			errors = append(errors, fmt.Sprintf("%s slot key '%s' collides with %s slot", name, key, other))
			continue
		}
		seen[key] = name
	}

	if c.CacheSize < 0 {
		errors = append(errors, fmt.Sprintf("invalid cache size %d: must not be negative", c.CacheSize))
	} else if c.CacheSize > 0 && c.CacheTTL < 0 {
		errors = append(errors, fmt.Sprintf("invalid cache TTL %v: must not be negative", c.CacheTTL))
	}

	if money.GetCurrency(c.Currency) == nil {
		errors = append(errors, fmt.Sprintf("unknown currency '%s'", c.Currency))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
