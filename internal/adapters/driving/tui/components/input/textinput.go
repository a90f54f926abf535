// Package input provides labelled text input fields for the TUI forms.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/styles"
)

const (
	defaultWidth = 40
	minWidth     = 20
	charLimit    = 512
)

// Field wraps a bubbles textinput with a label and aidoc styling.
type Field struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewField creates an unfocused field.
func NewField(s *styles.Styles, label, placeholder string) *Field {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Width = defaultWidth

	return &Field{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     defaultWidth,
	}
}

// NewPasswordField creates a field that masks its input.
func NewPasswordField(s *styles.Styles, label, placeholder string) *Field {
	f := NewField(s, label, placeholder)
	f.textinput.EchoMode = textinput.EchoPassword
	f.textinput.EchoCharacter = '•'
	return f
}

// Init initialises the field.
func (f *Field) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the label above the framed input.
func (f *Field) View() string {
	frame := f.styles.InputField
	if f.textinput.Focused() {
		frame = f.styles.FocusedInputField
	}
	box := frame.Render(f.textinput.View())
	if f.label == "" {
		return box
	}
	return lipgloss.JoinVertical(lipgloss.Left, f.styles.Muted.Render(f.label), box)
}

// Value returns the current input value.
func (f *Field) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *Field) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Focus sets focus on the field.
func (f *Field) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the field.
func (f *Field) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the field is focused.
func (f *Field) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the width of the field including its frame.
func (f *Field) SetWidth(width int) {
	f.width = width
	inputWidth := width - 4
	if inputWidth < minWidth {
		inputWidth = minWidth
	}
	f.textinput.Width = inputWidth
}

// Width returns the current width.
func (f *Field) Width() int {
	return f.width
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Reset clears the field.
func (f *Field) Reset() {
	f.textinput.Reset()
}
