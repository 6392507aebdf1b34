package entities

import (
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "Pending"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusTesting    ProjectStatus = "Testing"
	ProjectStatusDelivered  ProjectStatus = "Delivered"
)

func ParseProjectStatus(v string) (ProjectStatus, bool) {
	v = strings.TrimSpace(v)
	for _, s := range []ProjectStatus{ProjectStatusPending, ProjectStatusInProgress, ProjectStatusTesting, ProjectStatusDelivered} {
		if strings.EqualFold(string(s), v) {
			return s, true
		}
	}
	return "", false
}

// ECDLayout is the date-only format of a project's estimated completion date.
const ECDLayout = "2006-01-02"

// Project is the delivery unit created when a proposal is accepted.
//
// Storage model:
//   - PK: id
//   - GSI (request_id-index): request_id (one project per request)
//   - GSI (client_id-index): client_id
//   - GSI (agent_id-index): agent_id
type Project struct {
	ID              string        `json:"id"`
	RequestID       string        `json:"request_id"`
	ClientID        string        `json:"client_id"`
	AgentID         string        `json:"agent_id"`
	GlobalStatus    ProjectStatus `json:"global_status"`
	ProgressPercent int           `json:"progress_percent"`
	ECD             *time.Time    `json:"ecd,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (p Project) Owner() Owner {
	return Owner{ClientID: p.ClientID, AgentID: p.AgentID}
}

// ProjectStatusUpdate holds the fields agents and admins may change after creation.
// Nil fields are left untouched.
type ProjectStatusUpdate struct {
	GlobalStatus    *ProjectStatus
	ProgressPercent *int
	ECD             *time.Time
}

// ProjectNote is an append-only comment on a project.
type ProjectNote struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectAsset references an uploaded file; the upload itself is handled elsewhere.
type ProjectAsset struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	FilePath  string    `json:"file_path"`
	FileName  string    `json:"file_name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectVault is the decrypted technical vault of the client owning a project.
type ProjectVault struct {
	ProjectID      string `json:"project_id"`
	ClientID       string `json:"client_id"`
	CompanyName    string `json:"company_name"`
	TechnicalVault string `json:"technical_vault"`
}
