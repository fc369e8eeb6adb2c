package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"time-calculator/internal/model"
)

func (r *implRepository) LoadAll(ctx context.Context) ([]model.Preset, error) {
	raw, ok, err := r.store.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}
	if !ok || raw == "" {
		return []model.Preset{}, nil
	}

	var presets []model.Preset
	if err := json.Unmarshal([]byte(raw), &presets); err != nil {
		r.l.Warnf(ctx, "preset.repository.kv.LoadAll: discarding unreadable preset record: %v", err)
		return []model.Preset{}, nil
	}
	if presets == nil {
		presets = []model.Preset{}
	}
	return presets, nil
}

func (r *implRepository) ReplaceAll(ctx context.Context, presets []model.Preset) error {
	if presets == nil {
		presets = []model.Preset{}
	}
	data, err := json.Marshal(presets)
	if err != nil {
		return fmt.Errorf("failed to encode presets: %w", err)
	}
	if err := r.store.Set(ctx, Key, string(data)); err != nil {
		return fmt.Errorf("failed to write presets: %w", err)
	}
	return nil
}
