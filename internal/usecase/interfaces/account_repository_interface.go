package interfaces

import (
	"context"

	"agency_ops/internal/domain/entities"
)

// IAccountRepository abstracts persistence for users and client profiles.
type IAccountRepository interface {
	CreateUser(ctx context.Context, u entities.User) (entities.User, error)
	GetUserByID(ctx context.Context, id string) (entities.User, error)
	ListUsersByStatus(ctx context.Context, status entities.UserStatus) ([]entities.User, error)
	ListUsersByRole(ctx context.Context, role entities.Role) ([]entities.User, error)
	UpdateUserStatus(ctx context.Context, id string, status entities.UserStatus) (entities.User, error)

	CreateClient(ctx context.Context, c entities.Client) (entities.Client, error)
	GetClientByID(ctx context.Context, id string) (entities.Client, error)
	GetClientByUserID(ctx context.Context, userID string) (entities.Client, error)
	UpdateClientProfile(ctx context.Context, id string, update entities.ClientProfileUpdate) (entities.Client, error)
}
