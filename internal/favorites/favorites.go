// Package favorites keeps a set of favorited identifiers persisted in one
// kv slot. Add and Remove save immediately; Load and Save are also exposed
// for callers that manage the lifecycle themselves.
//
// A Set is not safe for concurrent use.
package favorites

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"iexpense/internal/kv"
	"iexpense/internal/log"
	"iexpense/internal/snapshot"
)

const DefaultKey = "Favorites"

type Set struct {
	slot   *snapshot.Slot[[]string]
	ids    map[string]struct{}
	logger *log.Logger
}

// New creates a set over backend stored under key and loads it.
func New(ctx context.Context, backend kv.Store, key string) *Set {
	if key == "" {
		key = DefaultKey
	}
	s := &Set{
		slot:   snapshot.NewSlot[[]string](backend, key),
		ids:    make(map[string]struct{}),
		logger: log.FromContext(ctx).WithComponent(log.ComponentFavorites),
	}
	s.Load(ctx)
	return s
}

// Load replaces the set with the saved one. Missing or malformed data
// leaves an empty set.
func (s *Set) Load(ctx context.Context) {
	ids, err := s.slot.LoadOr(ctx, nil)
	if err != nil && !errors.Is(err, kv.ErrNotFound) {
		s.logger.LogWith(ctx, slog.LevelWarn, "Discarding unreadable favorites",
			log.NewFields().WithOperation(log.OpLoad).WithSlot(s.slot.Key()).WithError(err))
	}
	s.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

// Save writes the set as a sorted JSON array.
func (s *Set) Save(ctx context.Context) error {
	return s.slot.Save(ctx, s.List())
}

func (s *Set) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Add inserts id and saves. Adding an existing id does not write.
func (s *Set) Add(ctx context.Context, id string) {
	if s.Contains(id) {
		return
	}
	s.ids[id] = struct{}{}
	s.save(ctx, log.OpAdd)
}

// Remove deletes id and saves. Removing an absent id does not write.
func (s *Set) Remove(ctx context.Context, id string) {
	if !s.Contains(id) {
		return
	}
	delete(s.ids, id)
	s.save(ctx, log.OpRemove)
}

// List returns the ids in sorted order.
func (s *Set) List() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (s *Set) Len() int {
	return len(s.ids)
}

func (s *Set) save(ctx context.Context, op string) {
	if err := s.Save(ctx); err != nil {
		s.logger.LogWith(ctx, slog.LevelWarn, "Favorites not persisted",
			log.NewFields().WithOperation(op).WithSlot(s.slot.Key()).WithError(err))
	}
}
