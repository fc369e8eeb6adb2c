package usecase

import (
	"time-calculator/internal/calculation"
	"time-calculator/internal/duration"
	"time-calculator/internal/model"
)

func buildPayload(snap model.FormSnapshot) (model.RequestPayload, error) {
	d, err := duration.NormalizeText(snap.DurationMagnitude, snap.DurationUnit)
	if err != nil {
		return model.RequestPayload{}, err
	}
	p := model.RequestPayload{
		InitialTime: snap.InitialTime,
		Duration:    d,
	}
	if snap.UseStartDate && snap.StartDate != "" {
		p.StartDate = snap.StartDate
	}
	return p, nil
}

// render picks exactly one branch for the service answer.
func render(result *model.CalculationResult, callErr error) calculation.Outcome {
	failure := func(msg string) calculation.Outcome {
		return calculation.Outcome{
			Kind:   calculation.OutcomeFailure,
			Lines:  []string{calculation.ErrorPrefix + msg},
			Result: result,
		}
	}

	if callErr != nil {
		msg := callErr.Error()
		if msg == "" {
			msg = calculation.MessageFetchFailed
		}
		return failure(msg)
	}
	if result == nil {
		return failure(calculation.MessageUnexpectedResponse)
	}

	switch result.Shape() {
	case model.ShapeError:
		return failure(result.Error)
	case model.ShapeDateRange:
		return calculation.Outcome{
			Kind: calculation.OutcomeSuccess,
			Lines: []string{
				"Start: " + result.StartDateTime,
				"End: " + result.EndDateTime,
				"Duration: " + result.DurationDetails,
			},
			Result: result,
		}
	case model.ShapeSimple:
		return calculation.Outcome{
			Kind:   calculation.OutcomeSuccess,
			Lines:  []string{result.ResultString},
			Result: result,
		}
	}
	return failure(calculation.MessageUnexpectedResponse)
}
