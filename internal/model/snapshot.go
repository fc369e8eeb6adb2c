package model

import "strings"

// FormSnapshot is every form field value at one point in time.
// It is what gets persisted after a successful calculation and what a preset stores.
type FormSnapshot struct {
	InitialTime       string       `json:"initial_time" yaml:"initial_time"`
	DurationMagnitude string       `json:"duration_value" yaml:"duration_value"`
	DurationUnit      DurationUnit `json:"duration_unit" yaml:"duration_unit"`
	UseStartDate      bool         `json:"use_start_date" yaml:"use_start_date"`
	StartDate         string       `json:"start_date" yaml:"start_date"`
}

// DefaultSnapshot is the state of a freshly cleared form.
func DefaultSnapshot() FormSnapshot {
	return FormSnapshot{DurationUnit: DefaultDurationUnit}
}

// Trimmed returns a copy with all text fields trimmed.
func (s FormSnapshot) Trimmed() FormSnapshot {
	s.InitialTime = strings.TrimSpace(s.InitialTime)
	s.DurationMagnitude = strings.TrimSpace(s.DurationMagnitude)
	s.StartDate = strings.TrimSpace(s.StartDate)
	if s.DurationUnit == "" {
		s.DurationUnit = DefaultDurationUnit
	}
	return s
}

// Complete reports whether the snapshot carries every value a submission needs:
// initial time and magnitude, plus a start date when the date toggle is on.
func (s FormSnapshot) Complete() bool {
	t := s.Trimmed()
	if t.InitialTime == "" || t.DurationMagnitude == "" {
		return false
	}
	return !t.UseStartDate || t.StartDate != ""
}
