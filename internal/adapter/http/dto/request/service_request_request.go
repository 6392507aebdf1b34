package request

import (
	"strings"

	"agency_ops/internal/usecase"
)

type CreateServiceRequestRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	Details    string `json:"details" binding:"required"`
	Priority   string `json:"priority"`
}

func (r CreateServiceRequestRequest) ToInput() usecase.CreateRequestInput {
	return usecase.CreateRequestInput{
		CategoryID: strings.TrimSpace(r.CategoryID),
		Details:    r.Details,
		Priority:   strings.TrimSpace(r.Priority),
	}
}

type AssignAgentRequest struct {
	AgentID string `json:"agent_id" binding:"required"`
}
