package cli

import (
	"context"
	"fmt"

	"iexpense/internal/activity"
	"iexpense/internal/backend"
	"iexpense/internal/config"
	"iexpense/internal/favorites"
	"iexpense/internal/ledger"
	"iexpense/internal/log"
)

// Session is one process's view of the stores. It is created once, used
// from a single goroutine, and closed at teardown.
type Session struct {
	Config     *config.Config
	Logger     *log.Logger
	Ledger     *ledger.Store
	Favorites  *favorites.Set
	Activities *activity.Log

	backend *backend.BackendResult
}

// Open builds the configured backend and loads every store from it.
func Open(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	ctx = log.NewContext(ctx, logger)

	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("backend config: %w", err)
	}
	res, err := backend.NewFactory(logger).CreateBackend(ctx, bcfg)
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	s := &Session{
		Config:     cfg,
		Logger:     logger,
		Ledger:     ledger.New(ctx, res.Store, ledger.WithKey(cfg.LedgerKey), ledger.WithLogger(logger)),
		Favorites:  favorites.New(ctx, res.Store, cfg.FavoritesKey),
		Activities: activity.New(ctx, res.Store, cfg.ActivitiesKey),
		backend:    res,
	}

	logger.DebugContext(ctx, "Session opened",
		log.FieldBackend, bcfg.Type.String(),
		log.FieldCount, s.Ledger.Len())
	return s, nil
}

// Close releases the backend. Stores need no explicit flush: every mutation
// already rewrote its slot.
func (s *Session) Close() error {
	if s == nil {
		return nil
	}
	if err := s.backend.Close(); err != nil {
		return fmt.Errorf("close backend: %w", err)
	}
	return nil
}
