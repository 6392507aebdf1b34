package response

import (
	"time"

	"agency_ops/internal/domain/entities"
)

type TimelineProposalResponse struct {
	ID     string    `json:"id"`
	Status string    `json:"status"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	PDF    string    `json:"pdf"`
}

type TimelineProjectResponse struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	Progress       int       `json:"progress"`
	StartDate      time.Time `json:"start_date"`
	CompletionDate *string   `json:"completion_date"`
}

type TimelineEntryResponse struct {
	RequestID     string                    `json:"request_id"`
	Category      string                    `json:"category"`
	Details       string                    `json:"details"`
	RequestDate   time.Time                 `json:"request_date"`
	RequestStatus string                    `json:"request_status"`
	AgentName     *string                   `json:"agent_name"`
	Proposal      *TimelineProposalResponse `json:"proposal"`
	Project       *TimelineProjectResponse  `json:"project"`
}

func FromTimeline(in []entities.TimelineEntry) []TimelineEntryResponse {
	out := make([]TimelineEntryResponse, 0, len(in))
	for _, e := range in {
		res := TimelineEntryResponse{
			RequestID:     e.RequestID,
			Category:      e.Category,
			Details:       e.Details,
			RequestDate:   e.RequestDate,
			RequestStatus: string(e.RequestStatus),
			AgentName:     e.AgentName,
		}
		if e.Proposal != nil {
			res.Proposal = &TimelineProposalResponse{
				ID:     e.Proposal.ID,
				Status: string(e.Proposal.Status),
				Amount: e.Proposal.Amount,
				Date:   e.Proposal.Date,
				PDF:    e.Proposal.PDF,
			}
		}
		if e.Project != nil {
			res.Project = &TimelineProjectResponse{
				ID:             e.Project.ID,
				Status:         string(e.Project.Status),
				Progress:       e.Project.Progress,
				StartDate:      e.Project.StartDate,
				CompletionDate: formatDate(e.Project.CompletionDate),
			}
		}
		out = append(out, res)
	}
	return out
}
