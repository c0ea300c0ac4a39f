// Package activity keeps an append-only list of tracked activities.
package activity

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"iexpense/internal/core"
	"iexpense/internal/kv"
	"iexpense/internal/log"
	"iexpense/internal/snapshot"
)

const DefaultKey = "Activities"

// Log is not safe for concurrent use.
type Log struct {
	slot   *snapshot.Slot[[]core.Activity]
	items  []core.Activity
	logger *log.Logger
}

func New(ctx context.Context, backend kv.Store, key string) *Log {
	if key == "" {
		key = DefaultKey
	}
	l := &Log{
		slot:   snapshot.NewSlot[[]core.Activity](backend, key),
		logger: log.FromContext(ctx).WithComponent(log.ComponentActivity),
	}
	l.Load(ctx)
	return l
}

// Load replaces the list with the saved one; missing or malformed data
// yields an empty list.
func (l *Log) Load(ctx context.Context) {
	items, err := l.slot.LoadOr(ctx, []core.Activity{})
	if err != nil && !errors.Is(err, kv.ErrNotFound) {
		l.logger.LogWith(ctx, slog.LevelWarn, "Discarding unreadable activities",
			log.NewFields().WithOperation(log.OpLoad).WithSlot(l.slot.Key()).WithError(err))
	}
	if items == nil {
		items = []core.Activity{}
	}
	l.items = items
}

// Append records a new activity, saves, and returns it.
func (l *Log) Append(ctx context.Context, title, description string) core.Activity {
	a := core.NewActivity(title, description)
	l.items = append(l.items, a)
	l.logger.InfoContext(ctx, "Activity appended", log.FieldRecordID, a.ID, log.FieldName, a.Title)
	if err := l.slot.Save(ctx, l.items); err != nil {
		l.logger.LogWith(ctx, slog.LevelWarn, "Activities not persisted",
			log.NewFields().WithOperation(log.OpAppend).WithSlot(l.slot.Key()).WithError(err))
	}
	return a
}

func (l *Log) Items() []core.Activity {
	return slices.Clone(l.items)
}
