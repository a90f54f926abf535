// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLogin is the sign-in form.
	ViewLogin ViewType = iota
	// ViewRegister is the sign-up form.
	ViewRegister
	// ViewProjects lists projects and hosts the create form.
	ViewProjects
	// ViewProjectDetail shows one project with its sections.
	ViewProjectDetail
	// ViewRefine is the freeform refine tool.
	ViewRefine
	// ViewSettings edits the client configuration.
	ViewSettings
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewRegister:
		return "register"
	case ViewProjects:
		return "projects"
	case ViewProjectDetail:
		return "project_detail"
	case ViewRefine:
		return "refine"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// Navigate asks the shell to switch to the route at Path, e.g. "/projects/3".
// The shell applies the session guard before switching.
type Navigate struct {
	Path string
}

// NavigateTo returns a command that emits Navigate.
func NavigateTo(path string) tea.Cmd {
	return func() tea.Msg {
		return Navigate{Path: path}
	}
}

// LoginFinished carries the outcome of a login attempt.
type LoginFinished struct {
	Err error
}

// RegisterFinished carries the outcome of a registration attempt.
type RegisterFinished struct {
	Err error
}

// ProjectsLoaded carries the project list.
type ProjectsLoaded struct {
	Projects []domain.Project
	Err      error
}

// ProjectCreated carries the outcome of a create-project submission.
type ProjectCreated struct {
	Project *domain.Project
	Err     error
}

// ProjectLoaded carries a full project fetch for the detail view.
// Generation is the detail view generation that issued the fetch.
type ProjectLoaded struct {
	Generation uint64
	ProjectID  int64
	Project    *domain.Project
	Err        error
}

// Setting is one configuration key with its effective value.
type Setting struct {
	Key   string
	Value string
}

// SettingsLoaded carries the current configuration.
type SettingsLoaded struct {
	Settings []Setting
	Err      error
}

// SettingSaved carries the outcome of updating one key.
type SettingSaved struct {
	Key string
	Err error
}

// RefineRequested is emitted by a section presenter when the user submits a prompt.
type RefineRequested struct {
	SectionID int64
	Prompt    string
}

// FeedbackRequested is emitted when the user likes or dislikes a section.
type FeedbackRequested struct {
	SectionID int64
	IsLike    bool
}

// CommentRequested is emitted by a comment sub-list when the user submits text.
type CommentRequested struct {
	SectionID int64
	Text      string
}

// SectionRefined carries the outcome of a section refine request.
type SectionRefined struct {
	Generation uint64
	SectionID  int64
	Err        error
}

// FeedbackSent carries the outcome of a feedback request.
type FeedbackSent struct {
	Generation uint64
	SectionID  int64
	Err        error
}

// CommentAdded carries the outcome of an add-comment request.
type CommentAdded struct {
	Generation uint64
	SectionID  int64
	Err        error
}

// ExportFinished carries the outcome of an export.
// Path is where the document was written.
type ExportFinished struct {
	Generation uint64
	Format     domain.DocumentFormat
	Path       string
	Err        error
}

// TextRefined carries the outcome of a freeform refine request.
type TextRefined struct {
	Text string
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
