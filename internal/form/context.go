package form

import (
	"fmt"
	"sync"
	"time"

	"time-calculator/internal/model"
	"time-calculator/pkg/datemath"
)

// Context owns the form fields, the submit control, the result area and the
// optional calendar binding. All mutations go through its methods.
type Context struct {
	mu sync.Mutex

	engine       *engine
	unit         model.DurationUnit
	useStartDate bool
	calendar     Calendar
	submit       SubmitControl
	result       ResultArea
}

// New creates an empty form with the default unit and the date toggle off.
func New() *Context {
	c := &Context{
		unit:   model.DefaultDurationUnit,
		submit: SubmitControl{Label: SubmitLabelIdle},
	}
	c.engine = newEngine(c.recompute)
	c.recompute()
	return c
}

// BindCalendar attaches the date-picker widget. Passing nil detaches it.
func (c *Context) BindCalendar(cal Calendar) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calendar = cal
}

// SetInitialTime stores and validates the initial time.
func (c *Context) SetInitialTime(value string) FieldState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.validate(FieldInitialTime, value, true)
	return c.engine.state(FieldInitialTime)
}

// SetDurationValue stores and validates the duration magnitude.
func (c *Context) SetDurationValue(value string) FieldState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.engine.validate(FieldDurationValue, value, true)
	return c.engine.state(FieldDurationValue)
}

// SetDurationUnit selects the unit and re-validates the magnitude.
func (c *Context) SetDurationUnit(unit model.DurationUnit) error {
	if !unit.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unit = unit
	c.engine.validate(FieldDurationValue, c.engine.state(FieldDurationValue).RawValue, true)
	return nil
}

// SetUseStartDate flips the date toggle. Turning it on validates the start date
// as required; turning it off clears the field's error so it stops blocking submission.
func (c *Context) SetUseStartDate(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setUseStartDate(on)
}

func (c *Context) setUseStartDate(on bool) {
	c.useStartDate = on
	if !on {
		c.engine.clear(FieldStartDate, false)
		return
	}
	c.syncCalendar()
	c.engine.validate(FieldStartDate, c.engine.state(FieldStartDate).RawValue, true)
}

// syncCalendar pushes the stored date into the widget. A date the widget
// rejects is dropped so the field re-validates as empty.
func (c *Context) syncCalendar() {
	if c.calendar == nil {
		return
	}
	date := c.engine.state(FieldStartDate).TrimmedValue
	if date == "" {
		c.calendar.Clear()
		return
	}
	if err := c.calendar.SetDate(date); err != nil {
		c.calendar.Clear()
		c.engine.setValue(FieldStartDate, "", c.useStartDate)
	}
}

// SetStartDate stores the date chosen in the calendar widget. It is only
// judged while the date toggle is on.
func (c *Context) SetStartDate(value string) FieldState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.useStartDate {
		c.engine.validate(FieldStartDate, value, true)
	} else {
		c.engine.setValue(FieldStartDate, value, false)
	}
	return c.engine.state(FieldStartDate)
}

// SetNow fills the initial time with now as "h:MM AM/PM" and validates it.
func (c *Context) SetNow(now time.Time) FieldState {
	return c.SetInitialTime(datemath.FormatClock12(now))
}

// Clear resets every field, the toggle, the validation visuals and the result area.
func (c *Context) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range Fields {
		c.engine.setValue(id, "", id != FieldStartDate)
	}
	c.unit = model.DefaultDurationUnit
	c.useStartDate = false
	if c.calendar != nil {
		c.calendar.Clear()
	}
	c.result = ResultArea{}
	c.recompute()
}

// Apply loads snap into the form. See ApplyMode for how much gets validated.
func (c *Context) Apply(snap model.FormSnapshot, mode ApplyMode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unit = snap.DurationUnit
	if !c.unit.Valid() {
		c.unit = model.DefaultDurationUnit
	}

	for id, v := range map[FieldID]string{
		FieldInitialTime:   snap.InitialTime,
		FieldDurationValue: snap.DurationMagnitude,
	} {
		if mode == ApplyRestore && v == "" {
			c.engine.setValue(id, v, true)
			continue
		}
		c.engine.validate(id, v, true)
	}

	c.engine.setValue(FieldStartDate, snap.StartDate, snap.UseStartDate)
	c.setUseStartDate(snap.UseStartDate)

	if mode == ApplyPreset {
		c.result = ResultArea{Kind: ResultInfo, Lines: []string{MessagePresetLoaded}}
	}
	c.recompute()
}

// ValidateAll re-validates every field that currently matters and reports
// whether all of them passed. It never trusts earlier results.
func (c *Context) ValidateAll() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	ok := c.engine.validate(FieldInitialTime, c.engine.state(FieldInitialTime).RawValue, true)
	ok = c.engine.validate(FieldDurationValue, c.engine.state(FieldDurationValue).RawValue, true) && ok
	if c.useStartDate {
		ok = c.engine.validate(FieldStartDate, c.engine.state(FieldStartDate).RawValue, true) && ok
	}
	return ok
}

// SetBusy swaps the submit control between its idle and in-flight looks.
// While busy the control is disabled whatever the fields say.
func (c *Context) SetBusy(busy bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.submit.Busy = busy
	if busy {
		c.submit.Label = SubmitLabelBusy
	} else {
		c.submit.Label = SubmitLabelIdle
	}
	c.recompute()
}

// SetResult replaces the result area.
func (c *Context) SetResult(kind ResultKind, lines ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = ResultArea{Kind: kind, Lines: append([]string(nil), lines...)}
}

// Snapshot returns the current field values, trimmed.
func (c *Context) Snapshot() model.FormSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return model.FormSnapshot{
		InitialTime:       c.engine.state(FieldInitialTime).RawValue,
		DurationMagnitude: c.engine.state(FieldDurationValue).RawValue,
		DurationUnit:      c.unit,
		UseStartDate:      c.useStartDate,
		StartDate:         c.engine.state(FieldStartDate).RawValue,
	}.Trimmed()
}

// Field returns the state of one field.
func (c *Context) Field(id FieldID) FieldState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.state(id)
}

// SubmitControl returns the current submit control state.
func (c *Context) SubmitControl() SubmitControl {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submit
}

// ResultText is what the copy-result control copies.
func (c *Context) ResultText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result.Text()
}

// View returns a copy of the whole form for rendering.
func (c *Context) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return View{
		Fields:       c.engine.snapshot(),
		Unit:         c.unit,
		UseStartDate: c.useStartDate,
		Submit:       c.submit,
		Result: ResultArea{
			Kind:  c.result.Kind,
			Lines: append([]string(nil), c.result.Lines...),
		},
	}
}
