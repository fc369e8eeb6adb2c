package calculation

import "errors"

var (
	ErrInvalidForm      = errors.New("form has invalid fields")
	ErrSubmitInProgress = errors.New("a calculation is already in progress")
	ErrNotSubmitting    = errors.New("no calculation in progress")
	ErrBadTransition    = errors.New("invalid state transition")
)
