// Package tui provides an interactive terminal user interface for aidoc.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session is the source of truth for the route guard.
	Session driving.SessionService

	// Auth performs login, registration and logout.
	Auth driving.AuthService

	// Projects lists, creates and fetches projects.
	Projects driving.ProjectService

	// Sections refines sections, records feedback and adds comments.
	Sections driving.SectionService

	// Export downloads DOCX and PPTX documents.
	Export driving.ExportService

	// Refiner backs the freeform refine tool.
	Refiner driving.TextRefiner

	// Settings manages client settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the required services.
// The optional services are assigned on the returned value.
func NewPorts(
	session driving.SessionService,
	auth driving.AuthService,
	projects driving.ProjectService,
) *Ports {
	return &Ports{
		Session:  session,
		Auth:     auth,
		Projects: projects,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Auth == nil {
		return ErrMissingAuthService
	}
	if p.Projects == nil {
		return ErrMissingProjectService
	}
	return nil
}
