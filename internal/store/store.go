// Package store provides a pluggable key-value cache used for memoizing
// translation results. A memory-backed store is used by default; a Redis
// store is selected when REDIS_DSN is configured.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned by Get when a key does not exist or has expired.
var ErrNotFound = errors.New("store: key not found")

// Store defines the interface for a key-value store.
type Store interface {
	// Set stores a key-value pair, with an optional expiration.
	// A TTL of 0 means no expiration.
	Set(key string, value []byte, ttl time.Duration) error

	// Get retrieves a value by its key. Returns ErrNotFound when absent.
	Get(key string) ([]byte, error)

	// Delete removes a value by its key.
	Delete(key string) error

	// Exists checks if a key exists.
	Exists(key string) (bool, error)

	// Clear removes all keys.
	Clear() error

	// Close releases any resources held by the store.
	Close() error
}
