package entities

import "time"

// TimelineEntry is one request of a client joined with its proposal and project.
// Proposal and Project are nil when they do not exist yet.
type TimelineEntry struct {
	RequestID     string            `json:"request_id"`
	Category      string            `json:"category"`
	Details       string            `json:"details"`
	RequestDate   time.Time         `json:"request_date"`
	RequestStatus RequestStatus     `json:"request_status"`
	AgentName     *string           `json:"agent_name"`
	Proposal      *TimelineProposal `json:"proposal"`
	Project       *TimelineProject  `json:"project"`
}

type TimelineProposal struct {
	ID     string         `json:"id"`
	Status ProposalStatus `json:"status"`
	Amount float64        `json:"amount"`
	Date   time.Time      `json:"date"`
	PDF    string         `json:"pdf"`
}

type TimelineProject struct {
	ID             string        `json:"id"`
	Status         ProjectStatus `json:"status"`
	Progress       int           `json:"progress"`
	StartDate      time.Time     `json:"start_date"`
	CompletionDate *time.Time    `json:"completion_date"`
}

// DefaultTimelineCategory labels requests whose category no longer exists.
const DefaultTimelineCategory = "General"
