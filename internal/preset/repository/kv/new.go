// Package kv stores the preset collection as a JSON array under one key of a storage.Store.
package kv

import (
	"time-calculator/internal/preset/repository"
	"time-calculator/internal/storage"
	pkgLog "time-calculator/pkg/log"
)

// Key is the storage key of the preset collection.
const Key = "timeCalcPresets"

type implRepository struct {
	l     pkgLog.Logger
	store storage.Store
}

// New creates a preset repository on top of store.
func New(l pkgLog.Logger, store storage.Store) repository.Repository {
	return &implRepository{l: l, store: store}
}
