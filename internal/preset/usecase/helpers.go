package usecase

import (
	"context"
	"strings"

	"time-calculator/internal/model"
	"time-calculator/internal/preset"
)

func normalizeName(name string) string {
	return strings.TrimSpace(name)
}

// checkSnapshot enforces what a preset must carry to be worth saving.
func checkSnapshot(s model.FormSnapshot) error {
	if s.InitialTime == "" || s.DurationMagnitude == "" {
		return preset.ErrIncompleteSnapshot
	}
	if s.UseStartDate && s.StartDate == "" {
		return preset.ErrMissingStartDate
	}
	return nil
}

func indexOf(presets []model.Preset, name string) int {
	for i, p := range presets {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func confirm(ctx context.Context, c preset.Confirmer, prompt string) bool {
	if c == nil {
		return false
	}
	return c.Confirm(ctx, prompt)
}
