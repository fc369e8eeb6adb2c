package tui

import (
	"github.com/charmbracelet/lipgloss"

	"time-calculator/internal/model"
)

var (
	// Light mode
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#1f2933")
	LightPrimary    = lipgloss.Color("#1c4e80")
	LightMuted      = lipgloss.Color("#7b8794")
	LightBorder     = lipgloss.Color("#cbd2d9")

	// Dark mode
	DarkBackground = lipgloss.Color("#141d2b")
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#7cb7f0")
	DarkMuted      = lipgloss.Color("#8a99ad")
	DarkBorder     = lipgloss.Color("#2a3850")

	// Same in both modes
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#43a047")
	Info        = lipgloss.Color("#2196F3")
)

// Theme is a colour scheme.
type Theme struct {
	Name       model.Theme
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Name:       model.ThemeLight,
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Muted:      LightMuted,
		Border:     LightBorder,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Name:       model.ThemeDark,
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
	}
}

// ThemeFor maps the stored preference to a Theme.
func ThemeFor(t model.Theme) Theme {
	if t == model.ThemeDark {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the styled components of the form screen.
type Styles struct {
	Theme Theme

	App    lipgloss.Style
	Title  lipgloss.Style
	Footer lipgloss.Style

	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Muted        lipgloss.Style

	ValidField   lipgloss.Style
	InvalidField lipgloss.Style
	FieldError   lipgloss.Style

	Button         lipgloss.Style
	FocusedButton  lipgloss.Style
	DisabledButton lipgloss.Style

	ResultBox lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style

	Selected lipgloss.Style
	Prompt   lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginTop(1),

		Label: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Width(16),

		FocusedLabel: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Width(16),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		ValidField: lipgloss.NewStyle().
			Foreground(Success),

		InvalidField: lipgloss.NewStyle().
			Foreground(Destructive),

		FieldError: lipgloss.NewStyle().
			Foreground(Destructive).
			PaddingLeft(16),

		Button: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2),

		FocusedButton: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 2),

		DisabledButton: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2),

		ResultBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			MarginTop(1),

		Success: lipgloss.NewStyle().
			Foreground(Success),

		Error: lipgloss.NewStyle().
			Foreground(Destructive),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		Selected: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Prompt: lipgloss.NewStyle().
			Foreground(theme.Primary),
	}
}
