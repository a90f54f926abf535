// Package styles provides the colour theme and lipgloss styles for the aidoc TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette.
type Theme struct {
	Primary    lipgloss.Color // accent for titles and focus
	Secondary  lipgloss.Color // secondary accent for subtitles
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
	HeaderBg   lipgloss.Color
}

// DefaultTheme returns the slate and indigo palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // violet
		Secondary:  lipgloss.Color("#2563EB"), // blue
		Background: lipgloss.Color("#1E293B"), // slate 800
		Foreground: lipgloss.Color("#E5E7EB"), // gray 200
		Muted:      lipgloss.Color("#9CA3AF"), // gray 400
		Success:    lipgloss.Color("#22C55E"), // green
		Warning:    lipgloss.Color("#F59E0B"), // amber
		Error:      lipgloss.Color("#EF4444"), // red
		Border:     lipgloss.Color("#334155"), // slate 700
		HeaderBg:   lipgloss.Color("#0F172A"), // slate 900
	}
}

// Styles holds the pre-built styles shared by views and components.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Help     lipgloss.Style

	// InputField frames a text input.
	InputField lipgloss.Style
	// FocusedInputField frames the text input that has focus.
	FocusedInputField lipgloss.Style

	StatusBar lipgloss.Style
	Header    lipgloss.Style

	// Card frames a project or section block.
	Card lipgloss.Style
	// FocusedCard frames the section that has focus.
	FocusedCard lipgloss.Style

	// Alert frames a modal alert.
	Alert lipgloss.Style

	Button         lipgloss.Style
	DisabledButton lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme selects DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		FocusedInputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.HeaderBg).
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.HeaderBg).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		FocusedCard: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Alert: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(theme.Error).
			Foreground(theme.Foreground).
			Padding(1, 3),

		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		DisabledButton: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles built from DefaultTheme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
