package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"iexpense/internal/kv"
)

// Store keeps slots in a process-local map. Contents do not survive a
// restart; it backs tests and the memory backend.
type Store struct {
	mu    sync.Mutex
	slots map[string][]byte
}

var _ kv.Store = (*Store)(nil)

func New() *Store {
	return &Store{slots: make(map[string][]byte)}
}

// NewFromDir creates a store seeded from base: every "<key>.json" file
// becomes the initial value of slot <key>. A missing directory yields an
// empty store, as does an empty base.
func NewFromDir(base string) (*Store, error) {
	s := New()
	if base == "" {
		return s, nil
	}
	entries, err := os.ReadDir(base)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read seed directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(base, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read seed %s: %w", e.Name(), err)
		}
		s.slots[strings.TrimSuffix(e.Name(), ".json")] = data
	}
	return s, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.slots[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, key)
	return nil
}

// Keys returns the slot names currently held.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.slots))
	for k := range s.slots {
		out = append(out, k)
	}
	return out
}
