package usecase_test

import (
	"context"
	"errors"

	"time-calculator/internal/model"
	"time-calculator/internal/preset"
)

// fakeRepo keeps the collection in memory and counts writes.
type fakeRepo struct {
	presets []model.Preset
	writes  int
	loadErr error
	saveErr error
}

func (r *fakeRepo) LoadAll(ctx context.Context) ([]model.Preset, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]model.Preset, len(r.presets))
	copy(out, r.presets)
	return out, nil
}

func (r *fakeRepo) ReplaceAll(ctx context.Context, presets []model.Preset) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.writes++
	r.presets = make([]model.Preset, len(presets))
	copy(r.presets, presets)
	return nil
}

var errStorage = errors.New("disk full")

// recordingConfirmer answers with a fixed value and remembers the prompts.
type recordingConfirmer struct {
	answer  bool
	prompts []string
}

func (c *recordingConfirmer) Confirm(ctx context.Context, prompt string) bool {
	c.prompts = append(c.prompts, prompt)
	return c.answer
}

var _ preset.Confirmer = (*recordingConfirmer)(nil)

func snap(initial, value string, unit model.DurationUnit) model.FormSnapshot {
	return model.FormSnapshot{InitialTime: initial, DurationMagnitude: value, DurationUnit: unit}
}
