package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"agency_ops/internal/domain/access"
	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxNoteLength = 5000

// ProjectStatusInput carries the raw fields of a project update. Nil fields are
// left untouched.
type ProjectStatusInput struct {
	GlobalStatus    *string
	ProgressPercent *int
	ECD             *string
}

type IProjectUseCase interface {
	ListProjects(ctx context.Context, principal entities.Principal, status string) ([]entities.Project, error)
	GetProject(ctx context.Context, principal entities.Principal, id string) (entities.Project, error)
	GetProjectVault(ctx context.Context, principal entities.Principal, id string) (entities.ProjectVault, error)
	UpdateProjectStatus(ctx context.Context, principal entities.Principal, id string, in ProjectStatusInput) (entities.Project, error)
	AddNote(ctx context.Context, principal entities.Principal, projectID, content string) (entities.ProjectNote, error)
	ListNotes(ctx context.Context, principal entities.Principal, projectID string) ([]entities.ProjectNote, error)
	ListAssets(ctx context.Context, principal entities.Principal, projectID string) ([]entities.ProjectAsset, error)
}

type ProjectUseCase struct {
	projects interfaces.IProjectRepository
	accounts interfaces.IAccountRepository
	vault    interfaces.IVaultCipher
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(projects interfaces.IProjectRepository, accounts interfaces.IAccountRepository, vault interfaces.IVaultCipher) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, accounts: accounts, vault: vault}
}

func (u *ProjectUseCase) ListProjects(ctx context.Context, principal entities.Principal, status string) ([]entities.Project, error) {
	status = strings.TrimSpace(status)
	if status != "" {
		parsed, ok := entities.ParseProjectStatus(status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		status = string(parsed)
	}
	scope, err := resolveScope(ctx, u.accounts, principal)
	if err != nil {
		return nil, err
	}
	filter := scope.Filter(status)
	if filter.DenyAll {
		return []entities.Project{}, nil
	}
	return u.projects.List(ctx, filter)
}

func (u *ProjectUseCase) GetProject(ctx context.Context, principal entities.Principal, id string) (entities.Project, error) {
	p, _, err := u.visibleProject(ctx, principal, id)
	return p, err
}

func (u *ProjectUseCase) GetProjectVault(ctx context.Context, principal entities.Principal, id string) (entities.ProjectVault, error) {
	p, _, err := u.visibleProject(ctx, principal, id)
	if err != nil {
		return entities.ProjectVault{}, err
	}
	client, err := u.accounts.GetClientByID(ctx, p.ClientID)
	if err != nil {
		return entities.ProjectVault{}, err
	}
	if client.ID == "" {
		return entities.ProjectVault{}, ErrClientNotFound
	}

	plain := ""
	if client.TechnicalVault != "" {
		plain, err = u.vault.Open(client.TechnicalVault)
		if err != nil {
			zap.L().Error("[project][usecase] vault decrypt failed", zap.String("client_id", client.ID), zap.Error(err))
			return entities.ProjectVault{}, fmt.Errorf("open technical vault: %w", err)
		}
	}
	zap.L().Info("[project][usecase] vault read",
		zap.String("project_id", p.ID), zap.String("principal_id", principal.ID), zap.String("role", string(principal.Role)))
	return entities.ProjectVault{
		ProjectID:      p.ID,
		ClientID:       client.ID,
		CompanyName:    client.CompanyName,
		TechnicalVault: plain,
	}, nil
}

func (u *ProjectUseCase) UpdateProjectStatus(ctx context.Context, principal entities.Principal, id string, in ProjectStatusInput) (entities.Project, error) {
	if err := requireRole(principal, entities.RoleAgent, entities.RoleAdmin); err != nil {
		return entities.Project{}, err
	}
	update, err := parseProjectStatusInput(in)
	if err != nil {
		return entities.Project{}, err
	}
	p, scope, err := u.visibleProject(ctx, principal, id)
	if err != nil {
		return entities.Project{}, err
	}
	if !scope.CanManage(p.Owner()) {
		return entities.Project{}, ErrNotRequestAgent
	}

	updated, err := u.projects.UpdateStatus(ctx, p.ID, update)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	zap.L().Info("[project][usecase] status updated",
		zap.String("project_id", updated.ID), zap.String("status", string(updated.GlobalStatus)), zap.Int("progress", updated.ProgressPercent))
	return updated, nil
}

func (u *ProjectUseCase) AddNote(ctx context.Context, principal entities.Principal, projectID, content string) (entities.ProjectNote, error) {
	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > maxNoteLength {
		return entities.ProjectNote{}, ErrInvalidNote
	}
	p, _, err := u.visibleProject(ctx, principal, projectID)
	if err != nil {
		return entities.ProjectNote{}, err
	}
	return u.projects.AddNote(ctx, entities.ProjectNote{
		ID:        uuid.NewString(),
		ProjectID: p.ID,
		UserID:    principal.ID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
}

func (u *ProjectUseCase) ListNotes(ctx context.Context, principal entities.Principal, projectID string) ([]entities.ProjectNote, error) {
	p, _, err := u.visibleProject(ctx, principal, projectID)
	if err != nil {
		return nil, err
	}
	return u.projects.ListNotes(ctx, p.ID)
}

func (u *ProjectUseCase) ListAssets(ctx context.Context, principal entities.Principal, projectID string) ([]entities.ProjectAsset, error) {
	p, _, err := u.visibleProject(ctx, principal, projectID)
	if err != nil {
		return nil, err
	}
	return u.projects.ListAssets(ctx, p.ID)
}

// visibleProject loads a project and re-checks that principal may see it.
func (u *ProjectUseCase) visibleProject(ctx context.Context, principal entities.Principal, id string) (entities.Project, access.Scope, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.Project{}, access.Scope{}, err
	}
	p, err := u.projects.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, access.Scope{}, err
	}
	if p.ID == "" {
		return entities.Project{}, access.Scope{}, ErrProjectNotFound
	}
	scope, err := resolveScope(ctx, u.accounts, principal)
	if err != nil {
		return entities.Project{}, access.Scope{}, err
	}
	if !scope.CanSee(p.Owner()) {
		return entities.Project{}, access.Scope{}, ErrNotVisible
	}
	return p, scope, nil
}

func parseProjectStatusInput(in ProjectStatusInput) (entities.ProjectStatusUpdate, error) {
	var out entities.ProjectStatusUpdate
	if in.GlobalStatus == nil && in.ProgressPercent == nil && in.ECD == nil {
		return out, ErrEmptyProjectUpdate
	}
	if in.GlobalStatus != nil {
		s, ok := entities.ParseProjectStatus(*in.GlobalStatus)
		if !ok {
			return out, ErrInvalidStatus
		}
		out.GlobalStatus = &s
	}
	if in.ProgressPercent != nil {
		if *in.ProgressPercent < 0 || *in.ProgressPercent > 100 {
			return out, ErrInvalidProgress
		}
		v := *in.ProgressPercent
		out.ProgressPercent = &v
	}
	if in.ECD != nil {
		d, err := time.Parse(entities.ECDLayout, strings.TrimSpace(*in.ECD))
		if err != nil {
			return out, ErrInvalidECD
		}
		out.ECD = &d
	}
	return out, nil
}
