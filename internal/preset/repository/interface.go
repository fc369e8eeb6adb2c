package repository

import (
	"context"

	"time-calculator/internal/model"
)

// Repository persists the whole preset collection as one record.
type Repository interface {
	// LoadAll returns the stored presets in order. An unreadable record yields an empty collection.
	LoadAll(ctx context.Context) ([]model.Preset, error)
	// ReplaceAll overwrites the stored collection in one write.
	ReplaceAll(ctx context.Context, presets []model.Preset) error
}
