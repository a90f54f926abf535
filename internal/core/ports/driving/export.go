package driving

import (
	"context"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

// ExportService produces binary documents for a project.
type ExportService interface {
	// Export returns the raw document bytes.
	Export(ctx context.Context, projectID int64, format domain.DocumentFormat) ([]byte, error)

	// Download exports and writes the document as <name>-<id>.<ext>,
	// returning the path written.
	Download(ctx context.Context, project *domain.Project, format domain.DocumentFormat) (string, error)

	// Preview exports the document and returns its text without saving it.
	Preview(ctx context.Context, projectID int64, format domain.DocumentFormat) (*domain.DocumentPreview, error)
}
