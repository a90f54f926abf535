package driving

import (
	"context"

	"github.com/custodia-labs/aidoc-cli/internal/core/domain"
)

// ProjectService reads and creates projects owned by the current session.
type ProjectService interface {
	// List returns all projects for the current session.
	List(ctx context.Context) ([]domain.Project, error)

	// Create submits a new project seeded with the default section skeleton.
	Create(ctx context.Context, project domain.NewProject) (*domain.Project, error)

	// Get fetches a project with its sections and comments.
	// Returns domain.ErrNotFound when the backend does not know the ID.
	Get(ctx context.Context, id int64) (*domain.Project, error)
}
