// Package snapshot persists a whole value as JSON under one named kv slot.
// Every save rewrites the complete value; there is no append log.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"iexpense/internal/kv"
)

// ErrMalformed wraps decode failures of a stored value.
var ErrMalformed = errors.New("snapshot: malformed slot value")

type Slot[T any] struct {
	store kv.Store
	key   string
}

func NewSlot[T any](store kv.Store, key string) *Slot[T] {
	return &Slot[T]{store: store, key: key}
}

func (s *Slot[T]) Key() string {
	return s.key
}

// Load decodes the slot. It returns kv.ErrNotFound when the slot is absent
// and an error wrapping ErrMalformed when the stored bytes do not decode.
func (s *Slot[T]) Load(ctx context.Context) (T, error) {
	var v T
	data, err := s.store.Get(ctx, s.key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s: %v", ErrMalformed, s.key, err)
	}
	return v, nil
}

// LoadOr is Load with every failure mapped to fallback. The error that
// caused the fallback is returned alongside for logging.
func (s *Slot[T]) LoadOr(ctx context.Context, fallback T) (T, error) {
	v, err := s.Load(ctx)
	if err != nil {
		return fallback, err
	}
	return v, nil
}

// Save encodes v and overwrites the slot.
func (s *Slot[T]) Save(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	if err := s.store.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("write %s: %w", s.key, err)
	}
	return nil
}
