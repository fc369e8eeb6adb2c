package form

import "regexp"

// FieldID names a tracked form field.
type FieldID string

const (
	FieldInitialTime   FieldID = "initial_time"
	FieldDurationValue FieldID = "duration_value"
	FieldStartDate     FieldID = "start_date"
)

// Fields lists the tracked fields in display order.
var Fields = []FieldID{FieldInitialTime, FieldDurationValue, FieldStartDate}

const (
	SubmitLabelIdle = "Calculate"
	SubmitLabelBusy = "Calculating..."

	MessageCorrectErrors = "Please correct the errors in the fields above."
	MessagePresetLoaded  = "Preset loaded. Adjust as needed and click Calculate."
)

var (
	// H:MM or H:MM AM/PM
	InitialTimePattern = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}(\s*(AM|PM))?$`)
	// Non-negative integer.
	DurationValuePattern = regexp.MustCompile(`^\d+$`)
	// [D days, ]H:MM[:SS] or :SS
	LegacyDurationPattern = regexp.MustCompile(`(?i)^((\d+\s+days?,\s+)?\d+:\d{1,2}(:\d{1,2})?|:\d{1,2})$`)
)

var (
	InitialTimeSpec = FieldSpec{
		ID:             FieldInitialTime,
		Label:          "Initial Time",
		Pattern:        InitialTimePattern,
		Hint:           "Invalid format. Use H:MM AM/PM or HH:MM.",
		ErrorElementID: "initial_time_error",
	}
	DurationValueSpec = FieldSpec{
		ID:             FieldDurationValue,
		Label:          "Duration",
		Pattern:        DurationValuePattern,
		Hint:           "Must be a non-negative number.",
		ErrorElementID: "duration_error",
	}
	StartDateSpec = FieldSpec{
		ID:             FieldStartDate,
		Label:          "Start Date",
		ErrorElementID: "start_date_error",
	}
	LegacyDurationSpec = FieldSpec{
		ID:             FieldDurationValue,
		Label:          "Duration",
		Pattern:        LegacyDurationPattern,
		Hint:           "Invalid format. Use H:MM:SS, D days, H:MM, etc.",
		ErrorElementID: "duration_error",
	}
)

// specFor returns the spec a form field is validated with.
func specFor(id FieldID) FieldSpec {
	switch id {
	case FieldInitialTime:
		return InitialTimeSpec
	case FieldDurationValue:
		return DurationValueSpec
	case FieldStartDate:
		return StartDateSpec
	}
	return FieldSpec{ID: id, Label: string(id)}
}
