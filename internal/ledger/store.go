// Package ledger owns the ordered list of expense records and keeps a full
// JSON snapshot of it in one kv slot. Every mutation rewrites the snapshot
// before returning; a failed write is logged and the in-memory list stays
// authoritative for the rest of the session.
//
// A Store is not safe for concurrent use.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"iexpense/internal/core"
	"iexpense/internal/kv"
	"iexpense/internal/log"
	"iexpense/internal/snapshot"
)

// DefaultKey is the slot the ledger persists into unless overridden.
const DefaultKey = "Items"

// ErrOffsetOutOfRange is returned by the remove operations when an offset
// does not address a record. The ledger is left unchanged.
var ErrOffsetOutOfRange = errors.New("ledger: offset out of range")

type Store struct {
	key    string
	slot   *snapshot.Slot[[]core.ExpenseRecord]
	items  []core.ExpenseRecord
	logger *log.Logger
}

type Option func(*Store)

// WithKey overrides the slot name.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l.WithComponent(log.ComponentLedger)
		}
	}
}

// New builds a store over backend and loads any previously saved records.
// Without WithLogger the logger carried by ctx is used.
func New(ctx context.Context, backend kv.Store, opts ...Option) *Store {
	s := &Store{
		key:    DefaultKey,
		logger: log.FromContext(ctx).WithComponent(log.ComponentLedger),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.slot = snapshot.NewSlot[[]core.ExpenseRecord](backend, s.key)
	s.Reload(ctx)
	return s
}

// Load reads the durable copy. Missing or malformed data yields an empty
// list; the cause is only logged.
func (s *Store) Load(ctx context.Context) []core.ExpenseRecord {
	items, err := s.slot.Load(ctx)
	switch {
	case errors.Is(err, kv.ErrNotFound):
		s.logger.DebugContext(ctx, "No saved ledger", log.FieldSlot, s.slot.Key())
		return []core.ExpenseRecord{}
	case err != nil:
		s.logger.LogWith(ctx, slog.LevelWarn, "Discarding unreadable ledger",
			log.NewFields().WithOperation(log.OpLoad).WithSlot(s.slot.Key()).WithError(err))
		return []core.ExpenseRecord{}
	case items == nil:
		return []core.ExpenseRecord{}
	}
	return items
}

// Reload replaces the in-memory list with the durable copy.
func (s *Store) Reload(ctx context.Context) {
	s.items = s.Load(ctx)
	s.logger.DebugContext(ctx, "Ledger loaded", log.FieldSlot, s.slot.Key(), log.FieldCount, len(s.items))
}

// Append adds rec at the end and persists.
func (s *Store) Append(ctx context.Context, rec core.ExpenseRecord) {
	s.items = append(s.items, rec)
	s.logger.LogWith(ctx, slog.LevelInfo, "Record appended",
		log.NewFields().WithOperation(log.OpAppend).
			WithRecord(rec.ID, rec.Name, rec.Category.String(), rec.Amount.String()))
	s.persist(ctx, log.OpAppend)
}

// RemoveAt removes the records at the given positions of the full list.
// Repeated offsets count once. If any offset is out of range nothing is
// removed and ErrOffsetOutOfRange is returned.
func (s *Store) RemoveAt(ctx context.Context, offsets ...int) error {
	if len(offsets) == 0 {
		return nil
	}
	drop := make(map[int]struct{}, len(offsets))
	for _, o := range offsets {
		if o < 0 || o >= len(s.items) {
			s.logger.WarnContext(ctx, "Rejected removal", log.FieldOffsets, offsets, log.FieldCount, len(s.items))
			return fmt.Errorf("%w: %d (len %d)", ErrOffsetOutOfRange, o, len(s.items))
		}
		drop[o] = struct{}{}
	}

	kept := make([]core.ExpenseRecord, 0, len(s.items)-len(drop))
	for i, rec := range s.items {
		if _, ok := drop[i]; !ok {
			kept = append(kept, rec)
		}
	}
	s.items = kept
	s.logger.InfoContext(ctx, "Records removed", log.FieldOffsets, offsets, log.FieldCount, len(drop))
	s.persist(ctx, log.OpRemove)
	return nil
}

// RemoveInCategory removes records addressed by their positions in
// ByCategory(label), which is how a per-category list reports deletions.
func (s *Store) RemoveInCategory(ctx context.Context, label core.Category, offsets ...int) error {
	view := s.ByCategory(label)
	ids := make([]string, 0, len(offsets))
	for _, o := range offsets {
		if o < 0 || o >= len(view) {
			return fmt.Errorf("%w: %d in %s (len %d)", ErrOffsetOutOfRange, o, label, len(view))
		}
		ids = append(ids, view[o].ID)
	}
	s.RemoveByID(ctx, ids...)
	return nil
}

// RemoveByID removes every record whose id is listed and returns how many
// were removed. Unknown ids are ignored.
func (s *Store) RemoveByID(ctx context.Context, ids ...string) int {
	if len(ids) == 0 {
		return 0
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(r core.ExpenseRecord) bool {
		_, ok := drop[r.ID]
		return ok
	})
	removed := before - len(s.items)
	if removed == 0 {
		return 0
	}
	s.logger.InfoContext(ctx, "Records removed by id", log.FieldCount, removed)
	s.persist(ctx, log.OpRemove)
	return removed
}

// ByCategory returns the records labelled category, in insertion order.
// The view is recomputed on every call.
func (s *Store) ByCategory(category core.Category) []core.ExpenseRecord {
	out := make([]core.ExpenseRecord, 0)
	for _, rec := range s.items {
		if rec.Category == category {
			out = append(out, rec)
		}
	}
	return out
}

func (s *Store) Personal() []core.ExpenseRecord { return s.ByCategory(core.Personal) }
func (s *Store) Business() []core.ExpenseRecord { return s.ByCategory(core.Business) }

// Items returns a copy of the full list.
func (s *Store) Items() []core.ExpenseRecord {
	return slices.Clone(s.items)
}

func (s *Store) Len() int {
	return len(s.items)
}

// Summary totals the ledger per category.
func (s *Store) Summary() core.Summary {
	return core.Summarize(s.items)
}

func (s *Store) persist(ctx context.Context, op string) {
	if err := s.slot.Save(ctx, s.items); err != nil {
		s.logger.LogWith(ctx, slog.LevelWarn, "Ledger not persisted",
			log.NewFields().WithOperation(op).WithSlot(s.slot.Key()).WithError(err).WithCount(len(s.items)))
	}
}
