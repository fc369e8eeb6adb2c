package usecase

import (
	"context"

	"time-calculator/internal/model"
)

func (uc *implUseCase) List(ctx context.Context) ([]model.Preset, error) {
	presets, err := uc.repo.LoadAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "preset.usecase.List: %v", err)
		return nil, err
	}
	return presets, nil
}
