package form

import (
	"regexp"
	"strings"

	"time-calculator/internal/model"
)

// FieldSpec describes how one field is labelled and validated.
type FieldSpec struct {
	ID      FieldID
	Label   string
	Pattern *regexp.Regexp // nil means only the required check applies
	Hint    string         // shown when Pattern does not match
	// ErrorElementID is what an invalid field's aria-describedby points at.
	ErrorElementID string
}

// Result is the outcome of validating a single value.
type Result struct {
	Valid   bool
	Message string
}

// Classification is the visual validity class of a field.
type Classification string

const (
	ClassNeutral Classification = ""
	ClassValid   Classification = "valid"
	ClassInvalid Classification = "invalid"
)

// FieldState is the tracked state of one field.
type FieldState struct {
	RawValue       string
	TrimmedValue   string
	Required       bool
	ErrorMessage   string
	Classification Classification

	// Accessibility attributes, set only while the field is invalid.
	AriaInvalid     bool
	AriaDescribedBy string
}

// IsValid is derived: no error and, when required, a non-empty value.
func (s FieldState) IsValid() bool {
	return s.ErrorMessage == "" && (!s.Required || s.TrimmedValue != "")
}

// SubmitControl is the state of the submit button.
type SubmitControl struct {
	Label   string
	Enabled bool
	Busy    bool
}

// ResultKind styles the shared result area.
type ResultKind string

const (
	ResultNone    ResultKind = ""
	ResultSuccess ResultKind = "success"
	ResultError   ResultKind = "error"
	ResultInfo    ResultKind = "info"
)

// ResultArea is what the shared result area shows.
type ResultArea struct {
	Kind  ResultKind
	Lines []string
}

// Text joins the result lines the way the copy-result control copies them.
func (r ResultArea) Text() string {
	return strings.Join(r.Lines, "\n")
}

// View is an immutable copy of everything a renderer needs.
type View struct {
	Fields       map[FieldID]FieldState
	Unit         model.DurationUnit
	UseStartDate bool
	Submit       SubmitControl
	Result       ResultArea
}

// Field returns the state of id in the view.
func (v View) Field(id FieldID) FieldState {
	return v.Fields[id]
}

// ApplyMode selects how a snapshot is applied to the form.
type ApplyMode int

const (
	// ApplyPreset validates every field, as after loading a preset.
	ApplyPreset ApplyMode = iota
	// ApplyRestore validates only non-empty fields, so a blank restored form is not painted red.
	ApplyRestore
)

// Calendar is the optional date-picker binding. Its methods run with the
// form locked and must not call back into the Context.
type Calendar interface {
	SetDate(date string) error
	Clear()
}
