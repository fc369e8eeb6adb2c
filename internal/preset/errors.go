package preset

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName          = errors.New("preset name cannot be empty")
	ErrIncompleteSnapshot = errors.New("initial time and duration value must be filled to save a preset")
	ErrMissingStartDate   = fmt.Errorf("start date must be filled when the start date is enabled: %w", ErrIncompleteSnapshot)
	ErrNotFound           = errors.New("preset not found")
)

// User-facing messages for the errors above.
const (
	MessageEmptyName          = "Preset name cannot be empty."
	MessageIncompleteSnapshot = "Initial time and duration value must be filled to save a preset."
	MessageMissingStartDate   = "Start date must be filled if 'Use Start Date' is checked for the preset."
	MessageNotFound           = "Preset not found."
)

// Message returns the user-facing text for err, or "" when err is not a preset error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrEmptyName):
		return MessageEmptyName
	case errors.Is(err, ErrMissingStartDate):
		return MessageMissingStartDate
	case errors.Is(err, ErrIncompleteSnapshot):
		return MessageIncompleteSnapshot
	case errors.Is(err, ErrNotFound):
		return MessageNotFound
	}
	return ""
}
