// Package storage is the persistent key-value store behind presets, the
// last-used inputs and the theme preference.
package storage

import "context"

// Store is a string key-value store. Every write replaces whole values, so a
// reader never sees a partially written record.
type Store interface {
	// Get returns the value under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key.
	Set(ctx context.Context, key, value string) error
	// SetMany stores every entry in one atomic write.
	SetMany(ctx context.Context, entries map[string]string) error
	// Remove deletes the keys. Missing keys are not an error.
	Remove(ctx context.Context, keys ...string) error
	// Close releases the store.
	Close() error
}
