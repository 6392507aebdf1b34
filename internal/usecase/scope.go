package usecase

import (
	"context"
	"strings"

	"agency_ops/internal/domain/access"
	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"
)

// resolveScope turns a principal into an access.Scope. Client principals are
// mapped to their client profile; a client without a profile gets an empty
// ClientID and therefore sees nothing.
func resolveScope(ctx context.Context, accounts interfaces.IAccountRepository, p entities.Principal) (access.Scope, error) {
	s := access.Scope{Role: p.Role, PrincipalID: p.ID}
	if p.Role != entities.RoleClient || p.ID == "" {
		return s, nil
	}
	c, err := accounts.GetClientByUserID(ctx, p.ID)
	if err != nil {
		return access.Scope{}, err
	}
	s.ClientID = c.ID
	return s, nil
}

func requireRole(p entities.Principal, roles ...entities.Role) error {
	for _, r := range roles {
		if p.Role == r {
			return nil
		}
	}
	return ErrRoleNotAllowed
}

func requireID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidID
	}
	return id, nil
}
