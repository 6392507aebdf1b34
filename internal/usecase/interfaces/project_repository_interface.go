package interfaces

import (
	"context"

	"agency_ops/internal/domain/entities"
)

// IProjectRepository abstracts persistence for projects and their notes/assets.
// Projects are only created by ILifecycleTx.CreateProject.
type IProjectRepository interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Project, error)
	List(ctx context.Context, filter entities.ListFilter) ([]entities.Project, error)
	UpdateStatus(ctx context.Context, id string, update entities.ProjectStatusUpdate) (entities.Project, error)
	AddNote(ctx context.Context, n entities.ProjectNote) (entities.ProjectNote, error)
	ListNotes(ctx context.Context, projectID string) ([]entities.ProjectNote, error)
	ListAssets(ctx context.Context, projectID string) ([]entities.ProjectAsset, error)
}
