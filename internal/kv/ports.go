// Package kv defines the key-value durable store the ledger, favorites and
// activity stores persist into. Each store owns one named slot.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the slot has never been written or was
// deleted.
var ErrNotFound = errors.New("kv: slot not found")

// Ports for durable slot storage.
type (
	Reader interface {
		// Get returns a copy of the bytes stored under key.
		Get(ctx context.Context, key string) ([]byte, error)
	}

	Writer interface {
		// Set overwrites the slot with value.
		Set(ctx context.Context, key string, value []byte) error
		// Delete removes the slot; deleting a missing slot is not an error.
		Delete(ctx context.Context, key string) error
	}

	Store interface {
		Reader
		Writer
	}
)
