package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"sync"
	"testing"

	"time-calculator/internal/calculation"
	"time-calculator/internal/calculation/usecase"
	"time-calculator/internal/form"
	"time-calculator/internal/model"
	"time-calculator/pkg/calcapi"
	pkgLog "time-calculator/pkg/log"
)

type fakeCalculator struct {
	mu       sync.Mutex
	calls    int
	payloads []model.RequestPayload
	result   *model.CalculationResult
	err      error
}

func (f *fakeCalculator) Calculate(ctx context.Context, p model.RequestPayload) (*model.CalculationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.payloads = append(f.payloads, p)
	return f.result, f.err
}

type fakePersister struct {
	saved []model.FormSnapshot
	err   error
}

func (p *fakePersister) Save(ctx context.Context, snap model.FormSnapshot) error {
	if p.err != nil {
		return p.err
	}
	p.saved = append(p.saved, snap)
	return nil
}

func validForm() *form.Context {
	f := form.New()
	f.SetInitialTime(" 10:00 AM ")
	f.SetDurationValue("90")
	f.SetDurationUnit(model.UnitMinutes)
	return f
}

func TestSubmitInvalidForm(t *testing.T) {
	f := form.New()
	f.SetInitialTime("25 o'clock")
	calc := &fakeCalculator{}
	p := &fakePersister{}
	uc := usecase.New(pkgLog.NewNop(), f, calc, p)

	out, err := uc.Submit(context.Background())
	if !errors.Is(err, calculation.ErrInvalidForm) {
		t.Fatalf("expected ErrInvalidForm, got %v", err)
	}
	if out.Kind != calculation.OutcomeInvalid {
		t.Errorf("expected invalid outcome, got %v", out.Kind)
	}
	if calc.calls != 0 {
		t.Errorf("no request may be sent, got %d", calc.calls)
	}
	if f.ResultText() != form.MessageCorrectErrors {
		t.Errorf("unexpected result text %q", f.ResultText())
	}
	if uc.State() != calculation.StateIdle {
		t.Errorf("expected idle, got %v", uc.State())
	}
	if f.Field(form.FieldDurationValue).ErrorMessage == "" {
		t.Error("empty required duration should be flagged by submit")
	}
}

func TestSubmitSuccess(t *testing.T) {
	tests := []struct {
		name      string
		result    *model.CalculationResult
		wantLines []string
	}{
		{
			name:      "Simple",
			result:    &model.CalculationResult{ResultString: "11:30 AM"},
			wantLines: []string{"11:30 AM"},
		},
		{
			name: "DateRange",
			result: &model.CalculationResult{
				StartDateTime:   "2024-05-01 10:00 AM",
				EndDateTime:     "2024-05-01 11:30 AM",
				DurationDetails: "1:30:00",
			},
			wantLines: []string{"Start: 2024-05-01 10:00 AM", "End: 2024-05-01 11:30 AM", "Duration: 1:30:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			calc := &fakeCalculator{result: tt.result}
			p := &fakePersister{}
			uc := usecase.New(pkgLog.NewNop(), f, calc, p)

			out, err := uc.Submit(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Kind != calculation.OutcomeSuccess || !out.Persisted {
				t.Errorf("unexpected outcome %+v", out)
			}
			if !reflect.DeepEqual(out.Lines, tt.wantLines) {
				t.Errorf("lines = %v, want %v", out.Lines, tt.wantLines)
			}
			if v := f.View(); v.Result.Kind != form.ResultSuccess {
				t.Errorf("result kind = %q", v.Result.Kind)
			}

			want := model.RequestPayload{InitialTime: "10:00 AM", Duration: "1:30:00"}
			if calc.payloads[0] != want {
				t.Errorf("payload = %+v, want %+v", calc.payloads[0], want)
			}
			if len(p.saved) != 1 || p.saved[0].InitialTime != "10:00 AM" || p.saved[0].DurationUnit != model.UnitMinutes {
				t.Errorf("unexpected persisted snapshot %+v", p.saved)
			}

			sc := f.SubmitControl()
			if sc.Busy || sc.Label != form.SubmitLabelIdle || !sc.Enabled {
				t.Errorf("submit control not restored: %+v", sc)
			}
		})
	}
}

func TestSubmitFailures(t *testing.T) {
	tests := []struct {
		name     string
		result   *model.CalculationResult
		err      error
		wantLine string
	}{
		{
			name:     "Non2xx With Error Body",
			err:      &calcapi.RequestError{StatusCode: http.StatusBadRequest, Message: "bad format"},
			wantLine: "Error: bad format",
		},
		{
			name:     "Non2xx Without Body",
			err:      &calcapi.RequestError{StatusCode: http.StatusBadGateway},
			wantLine: "Error: Server error: 502",
		},
		{
			name:     "Transport",
			err:      errors.New("connection refused"),
			wantLine: "Error: connection refused",
		},
		{
			name:     "2xx Error Body",
			result:   &model.CalculationResult{Error: "Invalid time", ResultString: "ignored"},
			wantLine: "Error: Invalid time",
		},
		{
			name:     "Neither Shape",
			result:   &model.CalculationResult{},
			wantLine: "Error: " + calculation.MessageUnexpectedResponse,
		},
		{
			name:     "Nil Result",
			wantLine: "Error: " + calculation.MessageUnexpectedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			p := &fakePersister{}
			uc := usecase.New(pkgLog.NewNop(), f, &fakeCalculator{result: tt.result, err: tt.err}, p)

			out, err := uc.Submit(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Kind != calculation.OutcomeFailure {
				t.Errorf("expected failure, got %v", out.Kind)
			}
			if f.ResultText() != tt.wantLine {
				t.Errorf("result text = %q, want %q", f.ResultText(), tt.wantLine)
			}
			if len(p.saved) != 0 {
				t.Error("failure must not persist inputs")
			}
			if f.Snapshot().InitialTime != "10:00 AM" {
				t.Error("inputs must be retained")
			}
			sc := f.SubmitControl()
			if sc.Busy || sc.Label != form.SubmitLabelIdle || !sc.Enabled {
				t.Errorf("submit control not restored: %+v", sc)
			}
			if uc.State() != calculation.StateIdle {
				t.Errorf("expected idle, got %v", uc.State())
			}
		})
	}
}

func TestBeginComplete(t *testing.T) {
	ctx := context.Background()
	f := validForm()
	f.SetUseStartDate(true)
	f.SetStartDate("2024-05-01")
	uc := usecase.New(pkgLog.NewNop(), f, &fakeCalculator{}, nil)

	payload, err := uc.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if payload.StartDate != "2024-05-01" {
		t.Errorf("start date missing from payload: %+v", payload)
	}
	if uc.State() != calculation.StateSubmitting {
		t.Errorf("expected submitting, got %v", uc.State())
	}

	sc := f.SubmitControl()
	if !sc.Busy || sc.Enabled || sc.Label != form.SubmitLabelBusy {
		t.Errorf("submit control should be busy: %+v", sc)
	}

	if _, err := uc.Begin(ctx); !errors.Is(err, calculation.ErrSubmitInProgress) {
		t.Errorf("expected ErrSubmitInProgress, got %v", err)
	}
	if _, err := uc.Submit(ctx); !errors.Is(err, calculation.ErrSubmitInProgress) {
		t.Errorf("expected ErrSubmitInProgress from Submit, got %v", err)
	}

	out := uc.Complete(ctx, &model.CalculationResult{ResultString: "ok"}, nil)
	if out.Kind != calculation.OutcomeSuccess {
		t.Errorf("expected success, got %+v", out)
	}
	if out.Persisted {
		t.Error("nothing to persist to without a persister")
	}

	stray := uc.Complete(ctx, &model.CalculationResult{ResultString: "late"}, nil)
	if stray.Kind != calculation.OutcomeFailure {
		t.Error("Complete outside a cycle must not succeed")
	}
	if f.ResultText() != "ok" {
		t.Errorf("stray Complete changed the result area: %q", f.ResultText())
	}
}

func TestStartDateOmittedWhenToggleOff(t *testing.T) {
	f := validForm()
	f.SetUseStartDate(true)
	f.SetStartDate("2024-05-01")
	f.SetUseStartDate(false)
	calc := &fakeCalculator{result: &model.CalculationResult{ResultString: "ok"}}

	usecase.New(pkgLog.NewNop(), f, calc, nil).Submit(context.Background())
	if calc.payloads[0].StartDate != "" {
		t.Errorf("start date sent while toggle off: %+v", calc.payloads[0])
	}
}

func TestPersistErrorStillSucceeds(t *testing.T) {
	f := validForm()
	p := &fakePersister{err: errors.New("disk full")}
	uc := usecase.New(pkgLog.NewNop(), f, &fakeCalculator{result: &model.CalculationResult{ResultString: "ok"}}, p)

	out, err := uc.Submit(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != calculation.OutcomeSuccess || out.Persisted {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestConcurrentSubmitsSendOneRequest(t *testing.T) {
	f := validForm()
	uc := usecase.New(pkgLog.NewNop(), f, &fakeCalculator{}, nil)

	ctx := context.Background()
	if _, err := uc.Begin(ctx); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	var wg sync.WaitGroup
	var rejected int
	var mu sync.Mutex
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Begin(ctx); errors.Is(err, calculation.ErrSubmitInProgress) {
				mu.Lock()
				rejected++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if rejected != 8 {
		t.Errorf("expected all 8 concurrent Begins rejected, got %d", rejected)
	}
	uc.Complete(ctx, nil, errors.New("x"))
}
