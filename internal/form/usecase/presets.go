package usecase

import (
	"context"

	"time-calculator/internal/form"
	"time-calculator/internal/model"
	"time-calculator/internal/preset"
)

func (uc *implUseCase) SavePreset(ctx context.Context, name string, confirm preset.Confirmer) (preset.SaveOutput, error) {
	return uc.presets.Save(ctx, preset.SaveInput{
		Name:     name,
		Snapshot: uc.form.Snapshot(),
		Confirm:  confirm,
	})
}

func (uc *implUseCase) LoadPreset(ctx context.Context, name string) (model.Preset, error) {
	p, err := uc.presets.Load(ctx, name)
	if err != nil {
		return model.Preset{}, err
	}
	uc.form.Apply(p.FormSnapshot, form.ApplyPreset)
	return p, nil
}

func (uc *implUseCase) DeletePreset(ctx context.Context, name string, confirm preset.Confirmer) (preset.DeleteOutput, error) {
	return uc.presets.Delete(ctx, preset.DeleteInput{Name: name, Confirm: confirm})
}

func (uc *implUseCase) ListPresets(ctx context.Context) ([]model.Preset, error) {
	return uc.presets.List(ctx)
}

func (uc *implUseCase) Theme(ctx context.Context) model.Theme {
	return uc.echo.Theme(ctx)
}

func (uc *implUseCase) ToggleTheme(ctx context.Context) (model.Theme, error) {
	next := uc.echo.Theme(ctx).Toggle()
	if err := uc.echo.SetTheme(ctx, next); err != nil {
		return uc.echo.Theme(ctx), err
	}
	return next, nil
}
