package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
	assert.Contains(t, km.Back.Keys(), "esc")
	assert.Contains(t, km.Submit.Keys(), "enter")
}

func TestDefaultKeyMap_QuitNeverUsesALetter(t *testing.T) {
	km := DefaultKeyMap()

	assert.NotContains(t, km.Quit.Keys(), "q")
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("+", km.Like))
	assert.True(t, Matches("l", km.Like))
	assert.True(t, Matches("-", km.Dislike))
	assert.True(t, Matches("k", km.Up))
	assert.False(t, Matches("x", km.Quit))
	assert.False(t, Matches("down", km.Up))
}

func TestHelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, []key.Binding{km.Back, km.Quit}, km.ShortHelp())
	assert.Contains(t, km.AuthHelp(), km.SwitchForm)
	assert.Contains(t, km.ProjectsHelp(), km.NewProject)
	assert.Contains(t, km.DetailHelp(), km.ExportDOCX)
	assert.Contains(t, km.DetailHelp(), km.ExportPPTX)
	assert.Len(t, km.FullHelp(), 4)
}

func TestBindings_HaveHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := map[string]key.Binding{
		"Quit":       km.Quit,
		"Back":       km.Back,
		"Logout":     km.Logout,
		"Settings":   km.Settings,
		"Up":         km.Up,
		"Down":       km.Down,
		"Select":     km.Select,
		"Next":       km.Next,
		"Prev":       km.Prev,
		"Submit":     km.Submit,
		"Reload":     km.Reload,
		"SwitchForm": km.SwitchForm,
		"NewProject": km.NewProject,
		"OpenRefine": km.OpenRefine,
		"CycleType":  km.CycleType,
		"Refine":     km.Refine,
		"Comment":    km.Comment,
		"Like":       km.Like,
		"Dislike":    km.Dislike,
		"ExportDOCX": km.ExportDOCX,
		"ExportPPTX": km.ExportPPTX,
		"Dismiss":    km.Dismiss,
	}

	for name, b := range bindings {
		t.Run(name, func(t *testing.T) {
			assert.NotEmpty(t, b.Help().Key)
			assert.NotEmpty(t, b.Help().Desc)
		})
	}
}
