package usecase

import (
	"context"
	"strings"
	"time"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const maxCategoryNameLength = 100

type ICategoryUseCase interface {
	CreateCategory(ctx context.Context, principal entities.Principal, name, description string) (entities.ServiceCategory, error)
	ListCategories(ctx context.Context) ([]entities.ServiceCategory, error)
}

type CategoryUseCase struct {
	repo interfaces.ICategoryRepository
}

var _ ICategoryUseCase = (*CategoryUseCase)(nil)

func NewCategoryUseCase(repo interfaces.ICategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (u *CategoryUseCase) CreateCategory(ctx context.Context, principal entities.Principal, name, description string) (entities.ServiceCategory, error) {
	if err := requireRole(principal, entities.RoleAdmin); err != nil {
		return entities.ServiceCategory{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxCategoryNameLength {
		return entities.ServiceCategory{}, ErrInvalidCategoryName
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.ServiceCategory{}, err
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return entities.ServiceCategory{}, ErrCategoryExists
		}
	}

	return u.repo.Create(ctx, entities.ServiceCategory{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC(),
	})
}

func (u *CategoryUseCase) ListCategories(ctx context.Context) ([]entities.ServiceCategory, error) {
	return u.repo.List(ctx)
}
