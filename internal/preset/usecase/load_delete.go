package usecase

import (
	"context"

	"time-calculator/internal/model"
	"time-calculator/internal/preset"
)

func (uc *implUseCase) Load(ctx context.Context, name string) (model.Preset, error) {
	name = normalizeName(name)
	if name == "" {
		return model.Preset{}, preset.ErrEmptyName
	}

	presets, err := uc.repo.LoadAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "preset.usecase.Load: %v", err)
		return model.Preset{}, err
	}

	i := indexOf(presets, name)
	if i < 0 {
		return model.Preset{}, preset.ErrNotFound
	}
	return presets[i], nil
}

// Delete checks the preset exists before asking, so the user is never asked about a missing name.
func (uc *implUseCase) Delete(ctx context.Context, input preset.DeleteInput) (preset.DeleteOutput, error) {
	name := normalizeName(input.Name)
	if name == "" {
		return preset.DeleteOutput{}, preset.ErrEmptyName
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	presets, err := uc.repo.LoadAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "preset.usecase.Delete: %v", err)
		return preset.DeleteOutput{}, err
	}

	i := indexOf(presets, name)
	if i < 0 {
		return preset.DeleteOutput{}, preset.ErrNotFound
	}
	if !confirm(ctx, input.Confirm, preset.DeletePrompt(name)) {
		return preset.DeleteOutput{Cancelled: true}, nil
	}

	presets = append(presets[:i], presets[i+1:]...)
	if err := uc.repo.ReplaceAll(ctx, presets); err != nil {
		uc.l.Errorf(ctx, "preset.usecase.Delete: %v", err)
		return preset.DeleteOutput{}, err
	}

	uc.l.Infof(ctx, "preset.usecase.Delete: deleted %q", name)
	return preset.DeleteOutput{}, nil
}
