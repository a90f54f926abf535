package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aidoc-cli/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// ExportService fetches binary documents and hands them to a download sink.
// Downloaded bytes are saved as received; only Preview inspects them.
type ExportService struct {
	gateway   driven.Gateway
	sink      driven.DownloadSink
	inspector driven.DocumentInspector
}

// NewExportService creates a new export service. sink may be nil, in which
// case Download returns domain.ErrNotImplemented.
func NewExportService(gateway driven.Gateway, sink driven.DownloadSink) *ExportService {
	return &ExportService{
		gateway: gateway,
		sink:    sink,
	}
}

// WithInspector enables Preview.
func (s *ExportService) WithInspector(inspector driven.DocumentInspector) *ExportService {
	s.inspector = inspector
	return s
}

// Export returns the raw document bytes for a project.
func (s *ExportService) Export(ctx context.Context, projectID int64, format domain.DocumentFormat) ([]byte, error) {
	if s.gateway == nil {
		return nil, domain.ErrNotImplemented
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	resp, err := s.gateway.Do(ctx, driven.Request{
		Method: http.MethodGet,
		Path:   exportPath(projectID, format),
		Kind:   driven.ResponseBinary,
	})
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", format.Label(), err)
	}
	if len(resp.Body) == 0 {
		return nil, fmt.Errorf("export %s: %w", format.Label(), domain.ErrEmptyExport)
	}
	logger.Debug("Exported project %d as %s (%d bytes)", projectID, format, len(resp.Body))
	return resp.Body, nil
}

// Download exports the project and saves it as <name>-<id>.<ext>.
// Nothing is written when the export fails.
func (s *ExportService) Download(
	ctx context.Context,
	project *domain.Project,
	format domain.DocumentFormat,
) (string, error) {
	if s.sink == nil {
		return "", domain.ErrNotImplemented
	}
	if project == nil {
		return "", domain.ErrInvalidInput
	}

	data, err := s.Export(ctx, project.ID, format)
	if err != nil {
		return "", err
	}

	path, err := s.sink.Save(domain.ExportFilename(project.Name, project.ID, format), data)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", format.Label(), err)
	}
	logger.Info("Saved %s", path)
	return path, nil
}

// Preview exports the project and extracts its text. Nothing is written.
func (s *ExportService) Preview(
	ctx context.Context,
	projectID int64,
	format domain.DocumentFormat,
) (*domain.DocumentPreview, error) {
	if s.inspector == nil {
		return nil, domain.ErrNotImplemented
	}

	data, err := s.Export(ctx, projectID, format)
	if err != nil {
		return nil, err
	}

	preview, err := s.inspector.Inspect(format, data)
	if err != nil {
		return nil, &domain.MalformedResponseError{What: format.Label() + " export", Err: err}
	}
	logger.Debug("Previewed project %d: %d paragraphs", projectID, len(preview.Paragraphs))
	return preview, nil
}

func exportPath(projectID int64, format domain.DocumentFormat) string {
	return "/export/" + format.String() + "/" + strconv.FormatInt(projectID, 10)
}
