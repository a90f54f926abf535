package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aidoc-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aidoc-cli/internal/logger"
)

// Ensure ProjectService implements the interface.
var _ driving.ProjectService = (*ProjectService)(nil)

const projectsPath = "/projects/"

// ProjectService reads and creates projects through the gateway.
type ProjectService struct {
	gateway driven.Gateway
}

// NewProjectService creates a new project service.
func NewProjectService(gateway driven.Gateway) *ProjectService {
	return &ProjectService{gateway: gateway}
}

// List returns all projects owned by the current session.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	if s.gateway == nil {
		return nil, domain.ErrNotImplemented
	}

	resp, err := s.gateway.Do(ctx, driven.Request{
		Method: http.MethodGet,
		Path:   projectsPath,
		Kind:   driven.ResponseJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	var projects []domain.Project
	if err := decodeJSON(resp, "project list", &projects); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	logger.Debug("Listed %d projects", len(projects))
	return projects, nil
}

// Create submits a new project. Whatever sections the caller supplies are
// replaced by the default three-section skeleton.
func (s *ProjectService) Create(ctx context.Context, project domain.NewProject) (*domain.Project, error) {
	if s.gateway == nil {
		return nil, domain.ErrNotImplemented
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}
	project.Sections = domain.DefaultSections()

	resp, err := s.gateway.Do(ctx, driven.Request{
		Method: http.MethodPost,
		Path:   projectsPath,
		JSON:   project,
		Kind:   driven.ResponseJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	var created domain.Project
	if err := decodeJSON(resp, "project", &created); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	logger.Info("Created project %d (%s)", created.ID, created.Name)
	return &created, nil
}

// Get fetches a project with nested sections and comments.
func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	if s.gateway == nil {
		return nil, domain.ErrNotImplemented
	}

	resp, err := s.gateway.Do(ctx, driven.Request{
		Method: http.MethodGet,
		Path:   projectsPath + strconv.FormatInt(id, 10),
		Kind:   driven.ResponseJSON,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}

	var project domain.Project
	if err := decodeJSON(resp, "project", &project); err != nil {
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}
	return &project, nil
}
