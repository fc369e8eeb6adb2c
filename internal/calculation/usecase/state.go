package usecase

import (
	"fmt"

	"time-calculator/internal/calculation"
)

var transitions = map[calculation.State]map[calculation.Event]calculation.State{
	calculation.StateIdle: {
		calculation.EventSubmit: calculation.StateValidating,
	},
	calculation.StateValidating: {
		calculation.EventInvalid: calculation.StateIdle,
		calculation.EventValid:   calculation.StateSubmitting,
	},
	calculation.StateSubmitting: {
		calculation.EventSuccess: calculation.StateIdle,
		calculation.EventFailure: calculation.StateIdle,
	},
}

// dispatch moves the machine along ev. Callers hold uc.mu.
func (uc *implUseCase) dispatch(ev calculation.Event) error {
	next, ok := transitions[uc.state][ev]
	if !ok {
		return fmt.Errorf("%w: %s on %s", calculation.ErrBadTransition, ev, uc.state)
	}
	uc.state = next
	return nil
}

func (uc *implUseCase) State() calculation.State {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}
