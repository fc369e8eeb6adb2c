// Package tui is the terminal front end of the time calculator form.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"time-calculator/internal/calculation"
	"time-calculator/internal/form"
	"time-calculator/internal/model"
	"time-calculator/pkg/calcapi"
	"time-calculator/pkg/datemath"
	pkgLog "time-calculator/pkg/log"
)

// focusTarget is a control on the form screen that can hold focus.
type focusTarget int

const (
	focusInitialTime focusTarget = iota
	focusDuration
	focusUnit
	focusToggle
	focusStartDate
	focusSubmit
	focusCount
)

// mode is the screen currently shown.
type mode int

const (
	modeForm mode = iota
	modePresets
	modeSaveName
	modeConfirm
)

// Config carries what the terminal form drives.
type Config struct {
	Logger      pkgLog.Logger
	Session     form.UseCase
	Calculation calculation.UseCase
	Calculator  calcapi.Calculator
	Clock       *datemath.Clock
	// Form, when set, gets the terminal calendar bound as its date picker.
	Form *form.Context
}

// confirmation is a pending yes/no question and what a "yes" does.
type confirmation struct {
	prompt string
	back   mode
	onYes  func(m Model) Model
}

// Model is the bubbletea model of the form screen.
type Model struct {
	ctx context.Context
	l   pkgLog.Logger

	session    form.UseCase
	calc       calculation.UseCase
	calculator calcapi.Calculator
	clock      *datemath.Clock

	styles  Styles
	width   int
	height  int
	mode    mode
	focus   focusTarget
	inputs  map[focusTarget]textinput.Model
	name    textinput.Model
	spinner spinner.Model

	presets []model.Preset
	cursor  int
	pending *confirmation

	// status is a one-line notice under the result area.
	status string
}

// New creates the form screen over an already restored session.
func New(ctx context.Context, cfg Config) Model {
	if cfg.Form != nil {
		cfg.Form.BindCalendar(newCalendar(cfg.Clock))
	}

	styles := NewStyles(ThemeFor(cfg.Session.Theme(ctx)))

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:        ctx,
		l:          cfg.Logger,
		session:    cfg.Session,
		calc:       cfg.Calculation,
		calculator: cfg.Calculator,
		clock:      cfg.Clock,
		styles:     styles,
		inputs: map[focusTarget]textinput.Model{
			focusInitialTime: newInput("2:30 PM", 8),
			focusDuration:    newInput("90", 12),
			focusStartDate:   newInput("yyyy-mm-dd, tomorrow, next monday", 24),
		},
		name:    newInput("Preset name", 40),
		spinner: sp,
	}
	m.applyStyles()
	m.syncInputs()
	m.setFocus(focusInitialTime)
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = limit
	ti.Width = 36
	return ti
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) applyStyles() {
	m.spinner.Style = m.styles.Prompt
	m.name.PromptStyle = m.styles.Prompt
}

// syncInputs copies the form values into the text inputs after the form
// changed underneath them (restore, clear, preset load, set now).
func (m *Model) syncInputs() {
	v := m.session.View(m.ctx)
	m.setInput(focusInitialTime, v.Field(form.FieldInitialTime).RawValue)
	m.setInput(focusDuration, v.Field(form.FieldDurationValue).RawValue)
	m.setInput(focusStartDate, v.Field(form.FieldStartDate).RawValue)
}

func (m *Model) setInput(target focusTarget, value string) {
	ti := m.inputs[target]
	ti.SetValue(value)
	m.inputs[target] = ti
}

func (m *Model) setFocus(target focusTarget) {
	m.focus = target
	for t, ti := range m.inputs {
		if t == target {
			ti.Focus()
		} else {
			ti.Blur()
		}
		m.inputs[t] = ti
	}
}

// moveFocus steps through the controls, skipping the start date while the toggle is off.
func (m *Model) moveFocus(step int) {
	useStartDate := m.session.View(m.ctx).UseStartDate
	next := m.focus
	for {
		next = (next + focusTarget(step) + focusCount) % focusCount
		if next != focusStartDate || useStartDate {
			break
		}
	}
	m.setFocus(next)
}

// View renders the current screen.
func (m Model) View() string {
	switch m.mode {
	case modePresets:
		return m.styles.App.Render(m.presetsView())
	case modeSaveName:
		return m.styles.App.Render(m.saveNameView())
	case modeConfirm:
		return m.styles.App.Render(m.confirmView())
	}
	return m.styles.App.Render(m.formView())
}
