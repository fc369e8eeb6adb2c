package usecase

import (
	"sync"

	"time-calculator/internal/calculation"
	"time-calculator/internal/form"
	"time-calculator/internal/model"
	"time-calculator/pkg/calcapi"
	pkgLog "time-calculator/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	form      *form.Context
	client    calcapi.Calculator
	persister calculation.Persister

	mu    sync.Mutex
	state calculation.State
	// inFlight is the snapshot taken when the current request was built.
	inFlight model.FormSnapshot
}

// New creates a new calculation UseCase bound to one form. persister may be nil.
func New(l pkgLog.Logger, f *form.Context, client calcapi.Calculator, persister calculation.Persister) calculation.UseCase {
	return &implUseCase{
		l:         l,
		form:      f,
		client:    client,
		persister: persister,
		state:     calculation.StateIdle,
	}
}
