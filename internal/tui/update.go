package tui

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"time-calculator/internal/calculation"
	"time-calculator/internal/form"
	"time-calculator/internal/model"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// Notices shown on the status line.
const (
	StatusCopied        = "Result copied to clipboard."
	StatusNothingToCopy = "Nothing to copy."
	StatusPresetSaved   = "Preset saved."
	StatusPresetDeleted = "Preset deleted."
	StatusNoPresets     = "No saved presets."
)

// calculatedMsg carries the answer of the calculation service back into the loop.
type calculatedMsg struct {
	result *model.CalculationResult
	err    error
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case calculatedMsg:
		out := m.calc.Complete(m.ctx, msg.result, msg.err)
		if out.Kind == calculation.OutcomeSuccess && !out.Persisted {
			m.l.Warn(m.ctx, "tui.Update: calculation inputs were not saved")
		}
		return m, nil

	case spinner.TickMsg:
		if !m.session.View(m.ctx).Submit.Busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modePresets:
			return m.updatePresets(msg)
		case modeSaveName:
			return m.updateSaveName(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		}
		return m.updateForm(msg)
	}

	if ti, ok := m.inputs[m.focus]; ok && m.mode == modeForm {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = ti.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		m.leaveField()
		m.moveFocus(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.leaveField()
		m.moveFocus(-1)
		return m, nil
	case tea.KeyCtrlS:
		m.leaveField()
		return m.submit()
	case tea.KeyCtrlN:
		st := m.session.SetNow(m.ctx)
		m.setInput(focusInitialTime, st.RawValue)
		return m, nil
	case tea.KeyCtrlR:
		if err := m.session.Clear(m.ctx); err != nil {
			m.status = calculation.ErrorPrefix + err.Error()
		} else {
			m.status = ""
		}
		m.syncInputs()
		return m, nil
	case tea.KeyCtrlY:
		return m.copyResult(), nil
	case tea.KeyCtrlT:
		return m.toggleTheme(), nil
	case tea.KeyCtrlP:
		m.leaveField()
		m.mode = modeSaveName
		m.name.Reset()
		m.name.Focus()
		return m, nil
	case tea.KeyCtrlO:
		m.leaveField()
		return m.openPresets(), nil
	}

	switch m.focus {
	case focusUnit:
		return m.updateUnit(msg), nil
	case focusToggle:
		if msg.Type == tea.KeySpace || msg.Type == tea.KeyEnter {
			m.toggleStartDate()
		}
		return m, nil
	case focusSubmit:
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
			return m.submit()
		}
		return m, nil
	case focusStartDate:
		if msg.Type == tea.KeyEnter {
			m.commitStartDate()
			return m, nil
		}
	case focusInitialTime, focusDuration:
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}
	}
	return m.updateInput(msg)
}

// updateInput feeds a key to the focused text input and validates the
// field as it is typed.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ti, ok := m.inputs[m.focus]
	if !ok {
		return m, nil
	}
	before := ti.Value()
	var cmd tea.Cmd
	ti, cmd = ti.Update(msg)
	m.inputs[m.focus] = ti
	if ti.Value() == before {
		return m, cmd
	}

	switch m.focus {
	case focusInitialTime:
		m.session.SetField(m.ctx, form.FieldInitialTime, ti.Value())
	case focusDuration:
		m.session.SetField(m.ctx, form.FieldDurationValue, ti.Value())
	}
	return m, cmd
}

// leaveField commits the start date when focus moves away from it.
func (m *Model) leaveField() {
	if m.focus == focusStartDate {
		m.commitStartDate()
	}
}

// commitStartDate resolves the typed date text and hands the result to the form.
// Unreadable text clears the field so the required check reports it.
func (m *Model) commitStartDate() {
	text := strings.TrimSpace(m.inputs[focusStartDate].Value())
	if text == "" {
		m.session.SetField(m.ctx, form.FieldStartDate, "")
		return
	}
	date, err := m.clock.ResolveDate(text)
	if err != nil {
		m.status = calculation.ErrorPrefix + err.Error()
		m.session.SetField(m.ctx, form.FieldStartDate, "")
		return
	}
	m.status = ""
	m.session.SetField(m.ctx, form.FieldStartDate, date)
	m.setInput(focusStartDate, date)
}

func (m Model) updateUnit(msg tea.KeyMsg) Model {
	unit := m.session.View(m.ctx).Unit
	switch msg.Type {
	case tea.KeyRight, tea.KeySpace, tea.KeyEnter:
		unit = unit.Next()
	case tea.KeyLeft:
		unit = unit.Prev()
	default:
		return m
	}
	if err := m.session.SetUnit(m.ctx, string(unit)); err != nil {
		m.l.Errorf(m.ctx, "tui.updateUnit: %v", err)
	}
	return m
}

func (m *Model) toggleStartDate() {
	on := !m.session.View(m.ctx).UseStartDate
	m.session.SetUseStartDate(m.ctx, on)
	m.syncInputs()
}

// submit starts a calculation. The request runs as a command and its answer
// comes back as a calculatedMsg.
func (m Model) submit() (tea.Model, tea.Cmd) {
	v := m.session.View(m.ctx)
	if v.Submit.Busy {
		return m, nil
	}
	m.status = ""

	payload, err := m.calc.Begin(m.ctx)
	if err != nil {
		if !errors.Is(err, calculation.ErrInvalidForm) {
			m.l.Warnf(m.ctx, "tui.submit: %v", err)
		}
		return m, nil
	}

	ctx, calculator := m.ctx, m.calculator
	request := func() tea.Msg {
		result, err := calculator.Calculate(ctx, payload)
		return calculatedMsg{result: result, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, request)
}

func (m Model) copyResult() Model {
	text := m.session.ResultText(m.ctx)
	if text == "" {
		m.status = StatusNothingToCopy
		return m
	}
	if err := clipboardWriteAll(text); err != nil {
		m.l.Warnf(m.ctx, "tui.copyResult: %v", err)
		m.status = calculation.ErrorPrefix + err.Error()
		return m
	}
	m.status = StatusCopied
	return m
}

func (m Model) toggleTheme() Model {
	theme, err := m.session.ToggleTheme(m.ctx)
	if err != nil {
		m.status = calculation.ErrorPrefix + err.Error()
	}
	m.styles = NewStyles(ThemeFor(theme))
	m.applyStyles()
	return m
}
