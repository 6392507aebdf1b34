package interfaces

import (
	"context"

	"agency_ops/internal/domain/entities"
)

type ICategoryRepository interface {
	Create(ctx context.Context, c entities.ServiceCategory) (entities.ServiceCategory, error)
	GetByID(ctx context.Context, id string) (entities.ServiceCategory, error)
	List(ctx context.Context) ([]entities.ServiceCategory, error)
}
