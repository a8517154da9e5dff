// Package storage is a flat, synchronous key-value store. Values are JSON
// documents stored as strings, one entry per key.
package storage

import (
	"context"
	"errors"
	"time"
)

// DefaultDBTimeout bounds a single store call.
const DefaultDBTimeout = 5 * time.Second

var (
	// ErrNotFound is returned by Get for a key that was never written.
	ErrNotFound = errors.New("storage: key not found")
	// ErrMalformed is returned by Lookup for a value that is not valid JSON.
	ErrMalformed = errors.New("storage: malformed value")
)

// Store is the keyed persistence contract the session writes through.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
