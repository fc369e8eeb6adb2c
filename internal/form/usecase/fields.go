package usecase

import (
	"context"
	"fmt"

	"time-calculator/internal/calculation"
	"time-calculator/internal/form"
	"time-calculator/internal/model"
)

func (uc *implUseCase) Restore(ctx context.Context) error {
	snap, err := uc.echo.Restore(ctx)
	if err != nil {
		return err
	}
	uc.form.Apply(snap, form.ApplyRestore)
	return nil
}

func (uc *implUseCase) View(ctx context.Context) form.View {
	return uc.form.View()
}

func (uc *implUseCase) SetField(ctx context.Context, id form.FieldID, value string) (form.FieldState, error) {
	switch id {
	case form.FieldInitialTime:
		return uc.form.SetInitialTime(value), nil
	case form.FieldDurationValue:
		return uc.form.SetDurationValue(value), nil
	case form.FieldStartDate:
		return uc.form.SetStartDate(value), nil
	}
	return form.FieldState{}, fmt.Errorf("%w: %q", form.ErrUnknownField, id)
}

func (uc *implUseCase) SetUnit(ctx context.Context, unit string) error {
	u, err := model.ParseDurationUnit(unit)
	if err != nil {
		return fmt.Errorf("%w: %q", form.ErrUnknownUnit, unit)
	}
	return uc.form.SetDurationUnit(u)
}

func (uc *implUseCase) SetUseStartDate(ctx context.Context, on bool) {
	uc.form.SetUseStartDate(on)
}

func (uc *implUseCase) SetNow(ctx context.Context) form.FieldState {
	return uc.form.SetNow(uc.clock.Now())
}

func (uc *implUseCase) Clear(ctx context.Context) error {
	uc.form.Clear()
	if err := uc.echo.Clear(ctx); err != nil {
		uc.l.Errorf(ctx, "form.usecase.Clear: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Submit(ctx context.Context) (calculation.Outcome, error) {
	return uc.calc.Submit(ctx)
}

func (uc *implUseCase) ResultText(ctx context.Context) string {
	return uc.form.ResultText()
}
