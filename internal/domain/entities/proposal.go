package entities

import "time"

type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "Draft"
	ProposalStatusSent     ProposalStatus = "Sent"
	ProposalStatusAccepted ProposalStatus = "Accepted"
)

// ProposalDocumentPending is stored as PDFPath until document generation succeeds.
const ProposalDocumentPending = "pending..."

// MaxProposalLineItems bounds a proposal so that replacing it fits a single
// DynamoDB transaction (100 actions: old items + new items + proposal rows).
const MaxProposalLineItems = 40

// DocumentState is the explicit two-step state of a proposal document.
type DocumentState string

const (
	DocumentStatePending DocumentState = "pending-document"
	DocumentStateReady   DocumentState = "document-ready"
)

// Proposal is an agent-authored quote against a service request.
//
// Storage model:
//   - PK: id
//   - GSI (request_id-index): request_id
//
// A request holds at most one proposal. Re-quoting deletes the previous proposal and
// its line items and inserts a new one; proposals are never edited in place.
type Proposal struct {
	ID          string             `json:"id"`
	RequestID   string             `json:"request_id"`
	AgentID     string             `json:"agent_id"`
	TotalAmount float64            `json:"total_amount"`
	Status      ProposalStatus     `json:"status"`
	PDFPath     string             `json:"pdf_path"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	LineItems   []ProposalLineItem `json:"line_items,omitempty"`
}

func (p Proposal) DocumentState() DocumentState {
	if p.PDFPath == "" || p.PDFPath == ProposalDocumentPending {
		return DocumentStatePending
	}
	return DocumentStateReady
}

func (p Proposal) DocumentReady() bool {
	return p.DocumentState() == DocumentStateReady
}

// ProposalLineItem is immutable; it lives and dies with its proposal.
//
// Storage model:
//   - PK: id
//   - GSI (proposal_id-index): proposal_id
type ProposalLineItem struct {
	ID          string  `json:"id"`
	ProposalID  string  `json:"proposal_id"`
	Position    int     `json:"position"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// LineItemInput is a caller-provided line item before ids are assigned.
type LineItemInput struct {
	Description string
	Price       float64
}

// SumLineItems returns the proposal total for items.
func SumLineItems(items []ProposalLineItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price
	}
	return total
}

// ProposalDocument is the input handed to the document generator.
type ProposalDocument struct {
	ProposalID  string
	ClientLabel string
	Items       []ProposalLineItem
	TotalAmount float64
}

// ProposalNotification is the input handed to the notification gateway.
type ProposalNotification struct {
	ProposalID  string
	ClientEmail string
	ClientName  string
	AgentEmail  string
	AgentName   string
	DocumentRef string
	TotalAmount float64
}
