package response

import (
	"time"

	"agency_ops/internal/domain/entities"
)

type ProjectResponse struct {
	ID              string    `json:"id"`
	RequestID       string    `json:"request_id"`
	ClientID        string    `json:"client_id"`
	AgentID         *string   `json:"agent_id"`
	GlobalStatus    string    `json:"global_status"`
	ProgressPercent int       `json:"progress_percent"`
	ECD             *string   `json:"ecd"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:              p.ID,
		RequestID:       p.RequestID,
		ClientID:        p.ClientID,
		AgentID:         optional(p.AgentID),
		GlobalStatus:    string(p.GlobalStatus),
		ProgressPercent: p.ProgressPercent,
		ECD:             formatDate(p.ECD),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromProjects(in []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(in))
	for _, p := range in {
		out = append(out, FromProject(p))
	}
	return out
}

type ProjectNoteResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func FromProjectNote(n entities.ProjectNote) ProjectNoteResponse {
	return ProjectNoteResponse{ID: n.ID, ProjectID: n.ProjectID, UserID: n.UserID, Content: n.Content, CreatedAt: n.CreatedAt}
}

func FromProjectNotes(in []entities.ProjectNote) []ProjectNoteResponse {
	out := make([]ProjectNoteResponse, 0, len(in))
	for _, n := range in {
		out = append(out, FromProjectNote(n))
	}
	return out
}

type ProjectAssetResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	FilePath  string    `json:"file_path"`
	FileName  string    `json:"file_name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func FromProjectAssets(in []entities.ProjectAsset) []ProjectAssetResponse {
	out := make([]ProjectAssetResponse, 0, len(in))
	for _, a := range in {
		out = append(out, ProjectAssetResponse{
			ID:        a.ID,
			ProjectID: a.ProjectID,
			FilePath:  a.FilePath,
			FileName:  a.FileName,
			Type:      a.Type,
			CreatedAt: a.CreatedAt,
		})
	}
	return out
}

type ProjectVaultResponse struct {
	ProjectID      string `json:"project_id"`
	ClientID       string `json:"client_id"`
	CompanyName    string `json:"company_name"`
	TechnicalVault string `json:"technical_vault"`
}

func FromProjectVault(v entities.ProjectVault) ProjectVaultResponse {
	return ProjectVaultResponse{
		ProjectID:      v.ProjectID,
		ClientID:       v.ClientID,
		CompanyName:    v.CompanyName,
		TechnicalVault: v.TechnicalVault,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(entities.ECDLayout)
	return &s
}
