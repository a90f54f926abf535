package mcp

import (
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session gates every call. Nil skips the check.
	Session driving.SessionService

	// Projects lists, creates and fetches projects.
	Projects driving.ProjectService

	// Sections refines sections, records feedback and adds comments.
	Sections driving.SectionService

	// Export writes DOCX and PPTX documents.
	Export driving.ExportService

	// Refiner rewrites freeform text.
	Refiner driving.TextRefiner
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Projects == nil {
		return ErrMissingProjectService
	}
	// The remaining services are optional; their tools report ErrNotImplemented.
	return nil
}
