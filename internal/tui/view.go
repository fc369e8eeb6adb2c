package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"time-calculator/internal/form"
)

const (
	title    = "Time Calculator"
	helpForm = "tab/shift+tab move · enter calculate · ctrl+n now · ctrl+r clear · ctrl+y copy · ctrl+p save preset · ctrl+o presets · ctrl+t theme · esc quit"
	helpList = "↑/↓ select · enter load · d delete · esc back"
)

func (m Model) formView() string {
	v := m.session.View(m.ctx)
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n")

	b.WriteString(m.fieldRow(focusInitialTime, v.Field(form.FieldInitialTime), form.InitialTimeSpec.Label, ""))
	b.WriteString(m.fieldRow(focusDuration, v.Field(form.FieldDurationValue), form.DurationValueSpec.Label, m.unitView(v)))

	check := "[ ]"
	if v.UseStartDate {
		check = "[x]"
	}
	b.WriteString(m.label(focusToggle, "Use Start Date"))
	b.WriteString(check)
	b.WriteString("\n")

	if v.UseStartDate {
		b.WriteString(m.fieldRow(focusStartDate, v.Field(form.FieldStartDate), form.StartDateSpec.Label, ""))
	}

	b.WriteString("\n")
	b.WriteString(m.submitView(v.Submit))

	if len(v.Result.Lines) > 0 {
		b.WriteString("\n")
		b.WriteString(m.resultView(v.Result))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(m.status))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(helpForm))
	return b.String()
}

func (m Model) label(target focusTarget, text string) string {
	if m.focus == target {
		return m.styles.FocusedLabel.Render(text)
	}
	return m.styles.Label.Render(text)
}

// fieldRow renders a labelled input coloured by its validity, plus the error line when invalid.
func (m Model) fieldRow(target focusTarget, st form.FieldState, label, suffix string) string {
	ti := m.inputs[target]
	switch st.Classification {
	case form.ClassValid:
		ti.TextStyle = m.styles.ValidField
	case form.ClassInvalid:
		ti.TextStyle = m.styles.InvalidField
	}

	row := m.label(target, label) + ti.View()
	if suffix != "" {
		row += "  " + suffix
	}
	row += "\n"
	if st.ErrorMessage != "" {
		row += m.styles.FieldError.Render(st.ErrorMessage) + "\n"
	}
	return row
}

func (m Model) unitView(v form.View) string {
	text := fmt.Sprintf("< %s >", v.Unit)
	if m.focus == focusUnit {
		return m.styles.Selected.Render(text)
	}
	return m.styles.Muted.Render(text)
}

func (m Model) submitView(sc form.SubmitControl) string {
	label := sc.Label
	if sc.Busy {
		label = m.spinner.View() + " " + label
	}
	switch {
	case !sc.Enabled:
		return m.styles.DisabledButton.Render(label)
	case m.focus == focusSubmit:
		return m.styles.FocusedButton.Render(label)
	}
	return m.styles.Button.Render(label)
}

func (m Model) resultView(r form.ResultArea) string {
	style := m.styles.Info
	switch r.Kind {
	case form.ResultSuccess:
		style = m.styles.Success
	case form.ResultError:
		style = m.styles.Error
	}
	return m.styles.ResultBox.Render(style.Render(r.Text()))
}

func (m Model) presetsView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Presets"))
	b.WriteString("\n")

	if len(m.presets) == 0 {
		b.WriteString(m.styles.Muted.Render(StatusNoPresets))
		b.WriteString("\n")
	}
	for i, p := range m.presets {
		line := fmt.Sprintf("%s  %s + %s %s", p.Name, p.InitialTime, p.DurationMagnitude, p.DurationUnit)
		if p.UseStartDate {
			line += " from " + p.StartDate
		}
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(helpList))
	return b.String()
}

func (m Model) saveNameView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Save Preset"),
		m.styles.Prompt.Render("Name: ")+m.name.View(),
		m.styles.Footer.Render("enter save · esc cancel"),
	)
}

func (m Model) confirmView() string {
	prompt := ""
	if m.pending != nil {
		prompt = m.pending.prompt
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Confirm"),
		prompt,
		m.styles.Footer.Render("y yes · n no"),
	)
}
