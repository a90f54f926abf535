// Package alert provides a blocking modal alert for the TUI.
package alert

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/styles"
)

// Alert is a modal message. While visible it swallows every key
// and is dismissed only by the Dismiss binding.
type Alert struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	message string
	visible bool
	shown   int
	width   int
	height  int
}

// New creates a hidden alert.
func New(s *styles.Styles, km *keymap.KeyMap) *Alert {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Alert{styles: s, keymap: km}
}

// Show displays message until dismissed.
func (a *Alert) Show(message string) {
	a.message = message
	a.visible = true
	a.shown++
}

// Visible reports whether the alert is displayed.
func (a *Alert) Visible() bool {
	return a.visible
}

// Message returns the current or last shown message.
func (a *Alert) Message() string {
	return a.message
}

// Shown returns how many times an alert has been raised.
func (a *Alert) Shown() int {
	return a.shown
}

// Dismiss hides the alert.
func (a *Alert) Dismiss() {
	a.visible = false
}

// Update consumes key presses while visible. handled is false when the
// alert is hidden and the message should be processed by the caller.
func (a *Alert) Update(msg tea.Msg) (handled bool) {
	if !a.visible {
		return false
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		if keymap.Matches(k.String(), a.keymap.Dismiss) {
			a.Dismiss()
		}
		return true
	}
	return false
}

// SetDimensions sets the area the alert is centred in.
func (a *Alert) SetDimensions(width, height int) {
	a.width = width
	a.height = height
}

// View renders the alert centred in its area, or "" when hidden.
func (a *Alert) View() string {
	if !a.visible {
		return ""
	}
	hint := a.styles.Help.Render("[enter] OK")
	box := a.styles.Alert.Render(lipgloss.JoinVertical(lipgloss.Center, a.message, "", hint))
	if a.width <= 0 || a.height <= 0 {
		return box
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}
