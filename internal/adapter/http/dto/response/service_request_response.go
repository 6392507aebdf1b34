package response

import (
	"time"

	"agency_ops/internal/domain/entities"
)

type ServiceRequestResponse struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	CategoryID string    `json:"category_id"`
	Details    string    `json:"details"`
	Priority   string    `json:"priority"`
	AgentID    *string   `json:"agent_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:         r.ID,
		ClientID:   r.ClientID,
		CategoryID: r.CategoryID,
		Details:    r.Details,
		Priority:   string(r.Priority),
		AgentID:    optional(r.AgentID),
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func FromServiceRequests(in []entities.ServiceRequest) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(in))
	for _, r := range in {
		out = append(out, FromServiceRequest(r))
	}
	return out
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
