package entities

import (
	"strings"
	"time"
)

// RequestStatus represents the lifecycle of a service request.
//
// Domain notes:
//   - Status only moves forward: Pending -> Assigned -> Quoted -> Converted.
//   - Quoted and Converted are written by the proposal lifecycle, never by callers.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "Pending"
	RequestStatusAssigned  RequestStatus = "Assigned"
	RequestStatusQuoted    RequestStatus = "Quoted"
	RequestStatusConverted RequestStatus = "Converted"
)

var requestStatusRank = map[RequestStatus]int{
	RequestStatusPending:   0,
	RequestStatusAssigned:  1,
	RequestStatusQuoted:    2,
	RequestStatusConverted: 3,
}

// Rank returns the position of s in the lifecycle, or -1 for unknown values.
func (s RequestStatus) Rank() int {
	if r, ok := requestStatusRank[s]; ok {
		return r
	}
	return -1
}

func (s RequestStatus) Valid() bool {
	return s.Rank() >= 0
}

// CanAdvanceTo reports whether moving from s to next keeps the status monotonic.
// Re-asserting the current status is allowed.
func (s RequestStatus) CanAdvanceTo(next RequestStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	return next.Rank() >= s.Rank()
}

func ParseRequestStatus(v string) (RequestStatus, bool) {
	v = strings.TrimSpace(v)
	for s := range requestStatusRank {
		if strings.EqualFold(string(s), v) {
			return s, true
		}
	}
	return "", false
}

type RequestPriority string

const (
	RequestPriorityLow    RequestPriority = "Low"
	RequestPriorityMedium RequestPriority = "Medium"
	RequestPriorityHigh   RequestPriority = "High"
	RequestPriorityUrgent RequestPriority = "Urgent"
)

// ParseRequestPriority defaults an empty priority to Medium.
func ParseRequestPriority(v string) (RequestPriority, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return RequestPriorityMedium, true
	}
	for _, p := range []RequestPriority{RequestPriorityLow, RequestPriorityMedium, RequestPriorityHigh, RequestPriorityUrgent} {
		if strings.EqualFold(string(p), v) {
			return p, true
		}
	}
	return "", false
}

// ServiceRequest is a client-submitted ask for work in a category.
//
// Storage model:
//   - PK: id
//   - GSI (client_id-index): client_id
//   - GSI (agent_id-index): agent_id
//
// ClientID is immutable once created. AgentID stays empty until an admin assigns one.
type ServiceRequest struct {
	ID         string          `json:"id"`
	ClientID   string          `json:"client_id"`
	CategoryID string          `json:"category_id"`
	Details    string          `json:"details"`
	Priority   RequestPriority `json:"priority"`
	AgentID    string          `json:"agent_id,omitempty"`
	Status     RequestStatus   `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (r ServiceRequest) Owner() Owner {
	return Owner{ClientID: r.ClientID, AgentID: r.AgentID}
}

// Owner identifies the client and agent a row belongs to, for visibility checks.
type Owner struct {
	ClientID string
	AgentID  string
}

// ListFilter restricts list queries. Empty fields do not filter.
type ListFilter struct {
	ClientID string
	AgentID  string
	Status   string
	// DenyAll is set for principals that may not see any row.
	DenyAll bool
}
