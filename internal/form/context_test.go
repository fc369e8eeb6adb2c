package form_test

import (
	"errors"
	"testing"
	"time"

	"time-calculator/internal/form"
	"time-calculator/internal/model"
)

type fakeCalendar struct {
	date    string
	cleared int
	reject  bool
}

func (f *fakeCalendar) SetDate(date string) error {
	if f.reject {
		return errors.New("bad date")
	}
	f.date = date
	return nil
}

func (f *fakeCalendar) Clear() {
	f.date = ""
	f.cleared++
}

func filledForm() *form.Context {
	fc := form.New()
	fc.SetInitialTime("3:00 PM")
	fc.SetDurationValue("90")
	return fc
}

func TestNewFormIsDisabled(t *testing.T) {
	fc := form.New()
	sc := fc.SubmitControl()
	if sc.Enabled {
		t.Fatal("fresh form must not allow submission")
	}
	if sc.Label != form.SubmitLabelIdle {
		t.Errorf("label = %q, want %q", sc.Label, form.SubmitLabelIdle)
	}
	if fc.View().Unit != model.UnitSeconds {
		t.Errorf("default unit = %q", fc.View().Unit)
	}
}

func TestFieldEditsDriveSubmitControl(t *testing.T) {
	fc := form.New()

	fc.SetInitialTime("3:00 PM")
	if fc.SubmitControl().Enabled {
		t.Fatal("enabled with empty duration")
	}

	st := fc.SetDurationValue("90")
	if st.Classification != form.ClassValid {
		t.Errorf("classification = %q, want valid", st.Classification)
	}
	if !fc.SubmitControl().Enabled {
		t.Fatal("expected enabled once both required fields are valid")
	}

	st = fc.SetDurationValue("9x")
	if st.Classification != form.ClassInvalid || !st.AriaInvalid || st.AriaDescribedBy != "duration_error" {
		t.Errorf("unexpected invalid state: %+v", st)
	}
	if fc.SubmitControl().Enabled {
		t.Fatal("expected disabled with invalid duration")
	}

	st = fc.SetInitialTime("")
	if st.ErrorMessage != "Initial Time cannot be empty." {
		t.Errorf("error = %q", st.ErrorMessage)
	}
}

func TestValidAndInvalidAreExclusive(t *testing.T) {
	fc := form.New()
	for _, v := range []string{"", "bad", "3:00 PM", "", "12:00"} {
		st := fc.SetInitialTime(v)
		if st.Classification == form.ClassValid && st.ErrorMessage != "" {
			t.Fatalf("%q: valid class with error %q", v, st.ErrorMessage)
		}
		if st.Classification == form.ClassInvalid && st.ErrorMessage == "" {
			t.Fatalf("%q: invalid class without error", v)
		}
		if st.AriaInvalid != (st.Classification == form.ClassInvalid) {
			t.Fatalf("%q: aria-invalid out of sync: %+v", v, st)
		}
	}
}

func TestStartDateToggle(t *testing.T) {
	fc := filledForm()
	if !fc.SubmitControl().Enabled {
		t.Fatal("precondition: form should be submittable")
	}

	fc.SetUseStartDate(true)
	st := fc.Field(form.FieldStartDate)
	if st.ErrorMessage != "Start Date cannot be empty." {
		t.Errorf("error = %q", st.ErrorMessage)
	}
	if fc.SubmitControl().Enabled {
		t.Fatal("toggle on with empty date must disable submission")
	}

	fc.SetUseStartDate(false)
	st = fc.Field(form.FieldStartDate)
	if st.ErrorMessage != "" || st.Classification != form.ClassNeutral || st.AriaInvalid {
		t.Errorf("toggle off must clear the date field: %+v", st)
	}
	if !fc.SubmitControl().Enabled {
		t.Fatal("toggle off must re-enable submission")
	}

	fc.SetUseStartDate(true)
	fc.SetStartDate("2026-10-18")
	if !fc.SubmitControl().Enabled {
		t.Fatal("expected enabled with a start date")
	}
}

func TestStartDateIgnoredWhileToggleOff(t *testing.T) {
	fc := filledForm()
	st := fc.SetStartDate("")
	if st.ErrorMessage != "" {
		t.Errorf("date judged while toggle off: %+v", st)
	}
	if !fc.SubmitControl().Enabled {
		t.Fatal("date must not block while toggle off")
	}
}

func TestCalendarBinding(t *testing.T) {
	cal := &fakeCalendar{}
	fc := filledForm()
	fc.BindCalendar(cal)

	fc.SetStartDate("2026-01-02")
	fc.SetUseStartDate(true)
	if cal.date != "2026-01-02" {
		t.Errorf("calendar date = %q", cal.date)
	}

	cal.reject = true
	fc.SetUseStartDate(false)
	fc.SetUseStartDate(true)
	st := fc.Field(form.FieldStartDate)
	if st.RawValue != "" || st.ErrorMessage != "Start Date cannot be empty." {
		t.Errorf("rejected date must be cleared and re-validated: %+v", st)
	}
}

func TestSetDurationUnitRevalidates(t *testing.T) {
	fc := form.New()
	if err := fc.SetDurationUnit(model.UnitHours); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fc.Field(form.FieldDurationValue).ErrorMessage; got != "Duration cannot be empty." {
		t.Errorf("error = %q", got)
	}
	if err := fc.SetDurationUnit(model.DurationUnit("weeks")); err == nil {
		t.Fatal("expected error for unknown unit")
	}
	if fc.View().Unit != model.UnitHours {
		t.Errorf("unit changed by rejected call: %q", fc.View().Unit)
	}
}

func TestSetNow(t *testing.T) {
	fc := form.New()
	st := fc.SetNow(time.Date(2026, 10, 18, 0, 7, 0, 0, time.UTC))
	if st.RawValue != "12:07 AM" {
		t.Errorf("value = %q, want %q", st.RawValue, "12:07 AM")
	}
	if st.Classification != form.ClassValid {
		t.Errorf("classification = %q", st.Classification)
	}
}

func TestClear(t *testing.T) {
	cal := &fakeCalendar{}
	fc := filledForm()
	fc.BindCalendar(cal)
	fc.SetDurationUnit(model.UnitDays)
	fc.SetUseStartDate(true)
	fc.SetResult(form.ResultSuccess, "done")

	fc.Clear()

	v := fc.View()
	if v.Unit != model.UnitSeconds || v.UseStartDate {
		t.Errorf("unit/toggle not reset: %+v", v)
	}
	for _, id := range form.Fields {
		st := v.Field(id)
		if st.RawValue != "" || st.ErrorMessage != "" || st.Classification != form.ClassNeutral {
			t.Errorf("%s not cleared: %+v", id, st)
		}
	}
	if v.Result.Kind != form.ResultNone || len(v.Result.Lines) != 0 {
		t.Errorf("result not cleared: %+v", v.Result)
	}
	if v.Submit.Enabled {
		t.Error("cleared form must not be submittable")
	}
	if cal.cleared == 0 {
		t.Error("calendar was not cleared")
	}
}

func TestApplyPreset(t *testing.T) {
	fc := form.New()
	fc.Apply(model.FormSnapshot{
		InitialTime:       "10:00 PM",
		DurationMagnitude: "3",
		DurationUnit:      model.UnitDays,
		UseStartDate:      true,
		StartDate:         "2026-02-03",
	}, form.ApplyPreset)

	v := fc.View()
	if !v.Submit.Enabled {
		t.Fatalf("loaded preset should be submittable: %+v", v)
	}
	if v.Result.Kind != form.ResultInfo || v.Result.Lines[0] != form.MessagePresetLoaded {
		t.Errorf("result = %+v", v.Result)
	}
	if got := fc.Snapshot(); got.DurationUnit != model.UnitDays || got.StartDate != "2026-02-03" {
		t.Errorf("snapshot = %+v", got)
	}
}

func TestApplyPresetValidatesEmptyFields(t *testing.T) {
	fc := form.New()
	fc.Apply(model.FormSnapshot{DurationUnit: model.UnitMinutes}, form.ApplyPreset)
	if got := fc.Field(form.FieldInitialTime).ErrorMessage; got != "Initial Time cannot be empty." {
		t.Errorf("error = %q", got)
	}
}

func TestApplyRestoreLeavesBlankFieldsNeutral(t *testing.T) {
	fc := form.New()
	fc.Apply(model.FormSnapshot{DurationMagnitude: "15", DurationUnit: model.UnitMinutes}, form.ApplyRestore)

	if st := fc.Field(form.FieldInitialTime); st.ErrorMessage != "" || st.Classification != form.ClassNeutral {
		t.Errorf("blank restored field should stay neutral: %+v", st)
	}
	if st := fc.Field(form.FieldDurationValue); st.Classification != form.ClassValid {
		t.Errorf("restored duration should be valid: %+v", st)
	}
	if fc.SubmitControl().Enabled {
		t.Error("still missing initial time")
	}
	if fc.View().Result.Kind != form.ResultNone {
		t.Error("restore must not write to the result area")
	}
}

func TestApplyUnknownUnitFallsBack(t *testing.T) {
	fc := form.New()
	fc.Apply(model.FormSnapshot{InitialTime: "1:00", DurationMagnitude: "1", DurationUnit: "fortnights"}, form.ApplyPreset)
	if fc.View().Unit != model.UnitSeconds {
		t.Errorf("unit = %q", fc.View().Unit)
	}
}

func TestBusyDisablesSubmit(t *testing.T) {
	fc := filledForm()
	fc.SetBusy(true)
	sc := fc.SubmitControl()
	if sc.Enabled || sc.Label != form.SubmitLabelBusy {
		t.Fatalf("busy control = %+v", sc)
	}
	// Edits while busy keep the control inert.
	fc.SetInitialTime("4:00 PM")
	if fc.SubmitControl().Enabled {
		t.Fatal("edit re-enabled a busy control")
	}
	fc.SetBusy(false)
	sc = fc.SubmitControl()
	if !sc.Enabled || sc.Label != form.SubmitLabelIdle {
		t.Fatalf("restored control = %+v", sc)
	}
}

func TestValidateAll(t *testing.T) {
	fc := filledForm()
	if !fc.ValidateAll() {
		t.Fatal("expected valid")
	}
	fc.SetUseStartDate(true)
	if fc.ValidateAll() {
		t.Fatal("expected invalid with toggle on and no date")
	}
}

func TestResultText(t *testing.T) {
	fc := form.New()
	fc.SetResult(form.ResultSuccess, "Start: a", "End: b")
	if got := fc.ResultText(); got != "Start: a\nEnd: b" {
		t.Errorf("ResultText() = %q", got)
	}
}
