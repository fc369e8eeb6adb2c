package duration

import "errors"

var (
	ErrUnknownUnit   = errors.New("unknown duration unit")
	ErrInvalidFormat = errors.New("invalid duration string format")
	ErrOutOfRange    = errors.New("duration component out of range")
)
