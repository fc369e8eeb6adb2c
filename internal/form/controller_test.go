package form_test

import (
	"testing"

	"time-calculator/internal/form"
)

func TestSubmissionAllowed(t *testing.T) {
	ok := form.FieldState{TrimmedValue: "x", Required: true}
	empty := form.FieldState{Required: true}
	bad := form.FieldState{TrimmedValue: "x", Required: true, ErrorMessage: "nope"}

	tests := []struct {
		name         string
		initial      form.FieldState
		duration     form.FieldState
		start        form.FieldState
		useStartDate bool
		want         bool
	}{
		{name: "all good, toggle off", initial: ok, duration: ok, start: empty, want: true},
		{name: "empty initial time", initial: empty, duration: ok, want: false},
		{name: "invalid initial time", initial: bad, duration: ok, want: false},
		{name: "empty duration", initial: ok, duration: empty, want: false},
		{name: "invalid duration", initial: ok, duration: bad, want: false},
		{name: "toggle on, empty date", initial: ok, duration: ok, start: empty, useStartDate: true, want: false},
		{name: "toggle on, date set", initial: ok, duration: ok, start: ok, useStartDate: true, want: true},
		{name: "toggle off ignores bad date", initial: ok, duration: ok, start: bad, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := form.SubmissionAllowed(tt.initial, tt.duration, tt.start, tt.useStartDate)
			if got != tt.want {
				t.Errorf("SubmissionAllowed() = %v, want %v", got, tt.want)
			}
		})
	}
}
