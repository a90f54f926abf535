// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding used by the views.
// Letter bindings only fire while no text input has focus.
type KeyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Logout   key.Binding
	Settings key.Binding

	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Reload key.Binding

	// Auth forms.
	SwitchForm key.Binding

	// Project list.
	NewProject key.Binding
	OpenRefine key.Binding
	CycleType  key.Binding

	// Project detail.
	Refine     key.Binding
	Comment    key.Binding
	Like       key.Binding
	Dislike    key.Binding
	ExportDOCX key.Binding
	ExportPPTX key.Binding
	Dismiss    key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "logout"),
		),
		Settings: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "settings"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),
		SwitchForm: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "switch login/register"),
		),
		NewProject: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new project"),
		),
		OpenRefine: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "refine text"),
		),
		CycleType: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "document type"),
		),
		Refine: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refine"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		Like: key.NewBinding(
			key.WithKeys("+", "l"),
			key.WithHelp("+", "like"),
		),
		Dislike: key.NewBinding(
			key.WithKeys("-", "d"),
			key.WithHelp("-", "dislike"),
		),
		ExportDOCX: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "export docx"),
		),
		ExportPPTX: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "export pptx"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter", "dismiss"),
		),
	}
}

// ShortHelp returns the bindings shown on every route.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// AuthHelp returns bindings for the login and register forms.
func (k *KeyMap) AuthHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.SwitchForm, k.Quit}
}

// ProjectsHelp returns bindings for the project list.
func (k *KeyMap) ProjectsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Select, k.NewProject, k.OpenRefine, k.Reload, k.Logout}
}

// DetailHelp returns bindings for the project detail view.
func (k *KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.Up, k.Refine, k.Comment, k.Like, k.Dislike, k.ExportDOCX, k.ExportPPTX, k.Back}
}

// FullHelp returns the bindings grouped for a help overlay.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.Refine, k.Comment, k.Like, k.Dislike},
		{k.ExportDOCX, k.ExportPPTX, k.Reload},
		{k.Settings, k.Logout, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
