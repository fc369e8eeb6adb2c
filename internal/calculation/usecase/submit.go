package usecase

import (
	"context"
	"errors"
	"fmt"

	"time-calculator/internal/calculation"
	"time-calculator/internal/form"
	"time-calculator/internal/model"
)

func (uc *implUseCase) Begin(ctx context.Context) (model.RequestPayload, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.dispatch(calculation.EventSubmit); err != nil {
		return model.RequestPayload{}, calculation.ErrSubmitInProgress
	}

	uc.form.SetResult(form.ResultNone)
	if !uc.form.ValidateAll() {
		uc.dispatch(calculation.EventInvalid)
		uc.form.SetResult(form.ResultError, form.MessageCorrectErrors)
		return model.RequestPayload{}, calculation.ErrInvalidForm
	}

	snap := uc.form.Snapshot()
	payload, err := buildPayload(snap)
	if err != nil {
		uc.dispatch(calculation.EventInvalid)
		uc.form.SetResult(form.ResultError, form.MessageCorrectErrors)
		return model.RequestPayload{}, fmt.Errorf("%w: %v", calculation.ErrInvalidForm, err)
	}

	uc.dispatch(calculation.EventValid)
	uc.form.SetBusy(true)
	uc.inFlight = snap
	return payload, nil
}

func (uc *implUseCase) Complete(ctx context.Context, result *model.CalculationResult, callErr error) calculation.Outcome {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.state != calculation.StateSubmitting {
		uc.l.Warnf(ctx, "calculation.usecase.Complete: %v", calculation.ErrNotSubmitting)
		return calculation.Outcome{Kind: calculation.OutcomeFailure}
	}
	defer uc.form.SetBusy(false)

	snap := uc.inFlight
	uc.inFlight = model.FormSnapshot{}

	out := render(result, callErr)
	if out.Kind != calculation.OutcomeSuccess {
		uc.dispatch(calculation.EventFailure)
		uc.form.SetResult(form.ResultError, out.Lines...)
		if callErr != nil {
			uc.l.Warnf(ctx, "calculation.usecase.Complete: request failed: %v", callErr)
		}
		return out
	}

	uc.dispatch(calculation.EventSuccess)
	uc.form.SetResult(form.ResultSuccess, out.Lines...)

	if uc.persister != nil {
		if err := uc.persister.Save(ctx, snap); err != nil {
			uc.l.Errorf(ctx, "calculation.usecase.Complete: persist inputs: %v", err)
		} else {
			out.Persisted = true
		}
	}
	return out
}

func (uc *implUseCase) Submit(ctx context.Context) (calculation.Outcome, error) {
	payload, err := uc.Begin(ctx)
	if err != nil {
		if errors.Is(err, calculation.ErrInvalidForm) {
			return calculation.Outcome{Kind: calculation.OutcomeInvalid, Lines: []string{form.MessageCorrectErrors}}, err
		}
		return calculation.Outcome{}, err
	}

	result, callErr := uc.client.Calculate(ctx, payload)
	return uc.Complete(ctx, result, callErr), nil
}
