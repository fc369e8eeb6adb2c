package usecase

import (
	"context"

	"time-calculator/internal/model"
	"time-calculator/internal/preset"
)

// Save validates the name and snapshot, then appends the preset or replaces the one with the same name in place.
func (uc *implUseCase) Save(ctx context.Context, input preset.SaveInput) (preset.SaveOutput, error) {
	name := normalizeName(input.Name)
	if name == "" {
		return preset.SaveOutput{}, preset.ErrEmptyName
	}

	snap := input.Snapshot.Trimmed()
	if err := checkSnapshot(snap); err != nil {
		return preset.SaveOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	presets, err := uc.repo.LoadAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "preset.usecase.Save: %v", err)
		return preset.SaveOutput{}, err
	}

	p := model.Preset{Name: name, FormSnapshot: snap}
	out := preset.SaveOutput{Preset: p}

	if i := indexOf(presets, name); i >= 0 {
		if !confirm(ctx, input.Confirm, preset.OverwritePrompt(name)) {
			out.Cancelled = true
			return out, nil
		}
		presets[i] = p
		out.Replaced = true
	} else {
		presets = append(presets, p)
	}

	if err := uc.repo.ReplaceAll(ctx, presets); err != nil {
		uc.l.Errorf(ctx, "preset.usecase.Save: %v", err)
		return preset.SaveOutput{}, err
	}

	uc.l.Infof(ctx, "preset.usecase.Save: saved %q (replaced=%v)", name, out.Replaced)
	return out, nil
}
