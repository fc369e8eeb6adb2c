package calculation

import "time-calculator/internal/model"

// State of the submission cycle.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	}
	return "unknown"
}

// Event drives the transition table.
type Event int

const (
	EventSubmit Event = iota
	EventInvalid
	EventValid
	EventSuccess
	EventFailure
)

func (e Event) String() string {
	switch e {
	case EventSubmit:
		return "submit"
	case EventInvalid:
		return "invalid"
	case EventValid:
		return "valid"
	case EventSuccess:
		return "success"
	case EventFailure:
		return "failure"
	}
	return "unknown"
}

// OutcomeKind tells how a cycle ended.
type OutcomeKind int

const (
	OutcomeInvalid OutcomeKind = iota
	OutcomeSuccess
	OutcomeFailure
)

// Outcome is what the result area ended up showing.
type Outcome struct {
	Kind   OutcomeKind
	Lines  []string
	Result *model.CalculationResult
	// Persisted is set when the inputs were handed to the Persister without error.
	Persisted bool
}

// Failure messages shown in the result area.
const (
	MessageFetchFailed        = "Failed to fetch. Check network or server."
	MessageUnexpectedResponse = "Unexpected response from server."
	ErrorPrefix               = "Error: "
)
