package usecase

import (
	"errors"
	"testing"

	"time-calculator/internal/calculation"
	"time-calculator/internal/model"
)

func TestBuildPayload(t *testing.T) {
	tests := []struct {
		name string
		snap model.FormSnapshot
		want model.RequestPayload
	}{
		{
			name: "Seconds Carry",
			snap: model.FormSnapshot{InitialTime: "1:00", DurationMagnitude: "3725", DurationUnit: model.UnitSeconds},
			want: model.RequestPayload{InitialTime: "1:00", Duration: "1:02:05"},
		},
		{
			name: "Days",
			snap: model.FormSnapshot{InitialTime: "1:00", DurationMagnitude: "1", DurationUnit: model.UnitDays, UseStartDate: true, StartDate: "2024-05-01"},
			want: model.RequestPayload{InitialTime: "1:00", Duration: "1 days, 0:00:00", StartDate: "2024-05-01"},
		},
		{
			name: "Hours Beyond Uint64",
			snap: model.FormSnapshot{InitialTime: "1:00", DurationMagnitude: "99999999999999999999", DurationUnit: model.UnitHours},
			want: model.RequestPayload{InitialTime: "1:00", Duration: "99999999999999999999:00:00"},
		},
		{
			name: "Toggle On Empty Date",
			snap: model.FormSnapshot{InitialTime: "1:00", DurationMagnitude: "2", DurationUnit: model.UnitHours, UseStartDate: true},
			want: model.RequestPayload{InitialTime: "1:00", Duration: "2:00:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildPayload(tt.snap)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, err := buildPayload(model.FormSnapshot{DurationUnit: "weeks"}); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestDispatch(t *testing.T) {
	uc := &implUseCase{state: calculation.StateIdle}

	steps := []struct {
		ev      calculation.Event
		want    calculation.State
		wantErr bool
	}{
		{ev: calculation.EventSuccess, want: calculation.StateIdle, wantErr: true},
		{ev: calculation.EventSubmit, want: calculation.StateValidating},
		{ev: calculation.EventSubmit, want: calculation.StateValidating, wantErr: true},
		{ev: calculation.EventValid, want: calculation.StateSubmitting},
		{ev: calculation.EventInvalid, want: calculation.StateSubmitting, wantErr: true},
		{ev: calculation.EventFailure, want: calculation.StateIdle},
		{ev: calculation.EventSubmit, want: calculation.StateValidating},
		{ev: calculation.EventInvalid, want: calculation.StateIdle},
	}

	for i, s := range steps {
		err := uc.dispatch(s.ev)
		if (err != nil) != s.wantErr {
			t.Fatalf("step %d (%s): err = %v, wantErr %v", i, s.ev, err, s.wantErr)
		}
		if err != nil && !errors.Is(err, calculation.ErrBadTransition) {
			t.Errorf("step %d: expected ErrBadTransition, got %v", i, err)
		}
		if uc.state != s.want {
			t.Fatalf("step %d (%s): state = %s, want %s", i, s.ev, uc.state, s.want)
		}
	}
}
