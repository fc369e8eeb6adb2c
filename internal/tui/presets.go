package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"time-calculator/internal/calculation"
	"time-calculator/internal/preset"
)

// errorText is the status line for a failed preset operation.
func errorText(err error) string {
	if msg := preset.Message(err); msg != "" {
		return msg
	}
	return calculation.ErrorPrefix + err.Error()
}

// probe is a Confirmer that declines and remembers what it was asked, so the
// question can be put to the user before the operation is repeated.
type probe struct {
	prompt string
}

func (p *probe) Confirm(_ context.Context, prompt string) bool {
	p.prompt = prompt
	return false
}

func (m Model) openPresets() Model {
	presets, err := m.session.ListPresets(m.ctx)
	if err != nil {
		m.status = errorText(err)
		return m
	}
	m.presets = presets
	if m.cursor >= len(presets) {
		m.cursor = len(presets) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.mode = modePresets
	return m
}

func (m Model) updatePresets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeForm
		return m, nil
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
		return m, nil
	case tea.KeyEnter:
		return m.loadSelected(), nil
	case tea.KeyDelete:
		return m.deleteSelected(), nil
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "k":
			return m.updatePresets(tea.KeyMsg{Type: tea.KeyUp})
		case "j":
			return m.updatePresets(tea.KeyMsg{Type: tea.KeyDown})
		case "d":
			return m.deleteSelected(), nil
		}
	}
	return m, nil
}

func (m Model) selected() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.presets) {
		return "", false
	}
	return m.presets[m.cursor].Name, true
}

func (m Model) loadSelected() Model {
	name, ok := m.selected()
	if !ok {
		return m
	}
	if _, err := m.session.LoadPreset(m.ctx, name); err != nil {
		m.status = errorText(err)
		return m
	}
	m.status = ""
	m.mode = modeForm
	m.syncInputs()
	return m
}

func (m Model) deleteSelected() Model {
	name, ok := m.selected()
	if !ok {
		return m
	}
	p := &probe{}
	out, err := m.session.DeletePreset(m.ctx, name, p)
	if err != nil {
		m.status = errorText(err)
		return m
	}
	if !out.Cancelled {
		return m.openPresets()
	}

	m.pending = &confirmation{
		prompt: p.prompt,
		back:   modePresets,
		onYes: func(m Model) Model {
			if _, err := m.session.DeletePreset(m.ctx, name, preset.Always); err != nil {
				m.status = errorText(err)
				return m.openPresets()
			}
			m.status = StatusPresetDeleted
			return m.openPresets()
		},
	}
	m.mode = modeConfirm
	return m
}

func (m Model) updateSaveName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.name.Blur()
		m.mode = modeForm
		return m, nil
	case tea.KeyEnter:
		m.name.Blur()
		return m.savePreset(m.name.Value()), nil
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m Model) savePreset(name string) Model {
	m.mode = modeForm
	p := &probe{}
	out, err := m.session.SavePreset(m.ctx, name, p)
	if err != nil {
		m.status = errorText(err)
		return m
	}
	if !out.Cancelled {
		m.status = StatusPresetSaved
		return m
	}

	m.pending = &confirmation{
		prompt: p.prompt,
		back:   modeForm,
		onYes: func(m Model) Model {
			if _, err := m.session.SavePreset(m.ctx, name, preset.Always); err != nil {
				m.status = errorText(err)
				return m
			}
			m.status = StatusPresetSaved
			return m
		},
	}
	m.mode = modeConfirm
	return m
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pending := m.pending
	if pending == nil {
		m.mode = modeForm
		return m, nil
	}

	answer := ""
	switch msg.Type {
	case tea.KeyEsc:
		answer = "n"
	case tea.KeyRunes:
		answer = string(msg.Runes)
	}

	switch answer {
	case "y", "Y":
		m.pending = nil
		m.mode = pending.back
		return pending.onYes(m), nil
	case "n", "N":
		m.pending = nil
		m.mode = pending.back
		return m, nil
	}
	return m, nil
}
