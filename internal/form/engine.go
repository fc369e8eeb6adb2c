package form

import "strings"

// engine tracks per-field state and renders validation results into it.
// Every validate or clear call ends with onChange, which recomputes submit enablement.
type engine struct {
	states   map[FieldID]FieldState
	onChange func()
}

func newEngine(onChange func()) *engine {
	e := &engine{
		states:   make(map[FieldID]FieldState, len(Fields)),
		onChange: onChange,
	}
	for _, id := range Fields {
		e.states[id] = FieldState{}
	}
	return e
}

// validate runs the validator for id and reflects the result. It returns the validity.
func (e *engine) validate(id FieldID, raw string, required bool) bool {
	spec := specFor(id)
	res := Validate(spec, raw, required)

	st := FieldState{
		RawValue:     raw,
		TrimmedValue: strings.TrimSpace(raw),
		Required:     required,
		ErrorMessage: res.Message,
	}
	switch {
	case !res.Valid:
		st.Classification = ClassInvalid
		st.AriaInvalid = true
		st.AriaDescribedBy = spec.ErrorElementID
	case st.TrimmedValue != "":
		st.Classification = ClassValid
	default:
		st.Classification = ClassNeutral
	}

	e.states[id] = st
	e.onChange()
	return res.Valid
}

// setValue stores raw without judging it. Any previous error is dropped.
func (e *engine) setValue(id FieldID, raw string, required bool) {
	e.states[id] = FieldState{
		RawValue:     raw,
		TrimmedValue: strings.TrimSpace(raw),
		Required:     required,
	}
	e.onChange()
}

// clear drops the error, classification and aria attributes of id but keeps its value.
func (e *engine) clear(id FieldID, required bool) {
	st := e.states[id]
	e.states[id] = FieldState{
		RawValue:     st.RawValue,
		TrimmedValue: st.TrimmedValue,
		Required:     required,
	}
	e.onChange()
}

func (e *engine) state(id FieldID) FieldState {
	return e.states[id]
}

func (e *engine) snapshot() map[FieldID]FieldState {
	out := make(map[FieldID]FieldState, len(e.states))
	for id, st := range e.states {
		out[id] = st
	}
	return out
}
