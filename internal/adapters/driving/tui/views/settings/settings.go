// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/router"
	"github.com/custodia-labs/aidoc-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aidoc-cli/internal/logger"
)

// Key constants for key handling.
const (
	keyUp    = "up"
	keyDown  = "down"
	keyEnter = "enter"
	keyEsc   = "esc"
)

// View lists every configuration key and edits one value at a time.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings []messages.Setting
	selected int
	editing  bool
	editor   *input.Field
	notice   string
	err      error

	width  int
	height int
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:          s,
		settingsService: settingsService,
		editor:          input.NewField(s, "Value", ""),
	}
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// Reset leaves edit mode and clears transient messages.
func (v *View) Reset() {
	v.editing = false
	v.editor.Reset()
	v.notice = ""
	v.err = nil
}

func (v *View) loadSettings() tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsLoaded{Err: domain.ErrNotImplemented}
		}
		keys := svc.Keys()
		list := make([]messages.Setting, 0, len(keys))
		for _, key := range keys {
			value, err := svc.Value(key)
			if err != nil {
				return messages.SettingsLoaded{Err: err}
			}
			list = append(list, messages.Setting{Key: key, Value: value})
		}
		return messages.SettingsLoaded{Settings: list}
	}
}

func (v *View) saveSetting(key, value string) tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingSaved{Key: key, Err: domain.ErrNotImplemented}
		}
		return messages.SettingSaved{Key: key, Err: svc.Set(key, value)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			logger.Error("loading settings: %v", msg.Err)
			v.err = msg.Err
			return v, nil
		}
		v.settings = msg.Settings
		v.err = nil
		if v.selected >= len(v.settings) {
			v.selected = max(len(v.settings)-1, 0)
		}
		return v, nil

	case messages.SettingSaved:
		if msg.Err != nil {
			logger.Error("saving %s: %v", msg.Key, msg.Err)
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.notice = fmt.Sprintf("Saved %s. Restart aidoc to apply.", msg.Key)
		return v, v.loadSettings()

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKey(msg)
		}
		return v.handleListKey(msg)
	}

	return v, nil
}

func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		return v, messages.NavigateTo(router.PathRoot)
	case keyUp, "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(v.settings)-1 {
			v.selected++
		}
	case keyEnter:
		if v.selected < len(v.settings) {
			v.editing = true
			v.notice = ""
			v.editor.SetValue(v.settings[v.selected].Value)
			return v, v.editor.Focus()
		}
	}
	return v, nil
}

func (v *View) handleEditKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		v.editing = false
		v.editor.Blur()
		return v, nil
	case keyEnter:
		v.editing = false
		v.editor.Blur()
		return v, v.saveSetting(v.settings[v.selected].Key, v.editor.Value())
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	return v, cmd
}

// View renders the settings list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n")
	if v.settingsService != nil {
		b.WriteString(v.styles.Muted.Render(v.settingsService.Path()))
	}
	b.WriteString("\n\n")

	if len(v.settings) == 0 && v.err == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
	}

	for i, s := range v.settings {
		value := s.Value
		if value == "" {
			value = "(default)"
		}
		line := fmt.Sprintf("%-32s %s", s.Key, value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if v.editing {
		b.WriteString("\n")
		b.WriteString(v.editor.View())
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(v.err.Error()))
		b.WriteString("\n")
	} else if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render(v.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.editing {
		b.WriteString(v.styles.Help.Render("[enter] save  [esc] cancel"))
	} else {
		b.WriteString(v.styles.Help.Render("[↑/↓] select  [enter] edit  [esc] back"))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.editor.SetWidth(min(width, 80))
}

// Settings returns the loaded settings.
func (v *View) Settings() []messages.Setting {
	return v.settings
}

// SelectedIndex returns the highlighted row.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Editing reports whether keys are going to the value editor.
func (v *View) Editing() bool {
	return v.editing
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
