package calculation

import (
	"context"

	"time-calculator/internal/model"
)

// UseCase runs one request/response cycle against the calculation service.
//
// Event-loop drivers call Begin, perform the request themselves and hand the
// answer to Complete. Everyone else calls Submit.
type UseCase interface {
	// Begin re-validates the form and, when it passes, disables the submit
	// control and returns the payload to send.
	Begin(ctx context.Context) (model.RequestPayload, error)
	// Complete renders the service answer and returns the form to idle.
	Complete(ctx context.Context, result *model.CalculationResult, callErr error) Outcome
	// Submit is Begin, the service call, then Complete.
	Submit(ctx context.Context) (Outcome, error)
	// State reports where the cycle currently is.
	State() State
}

// Persister receives the inputs of every successful calculation.
type Persister interface {
	Save(ctx context.Context, snap model.FormSnapshot) error
}
