package response

import (
	"time"

	"agency_ops/internal/domain/entities"
)

type LineItemResponse struct {
	ID          string  `json:"id"`
	Position    int     `json:"position"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ProposalResponse exposes the document state explicitly; pdf_path is only set once
// the document is ready.
type ProposalResponse struct {
	ID            string             `json:"id"`
	RequestID     string             `json:"request_id"`
	AgentID       string             `json:"agent_id"`
	TotalAmount   float64            `json:"total_amount"`
	Status        string             `json:"status"`
	DocumentState string             `json:"document_state"`
	PDFPath       *string            `json:"pdf_path"`
	LineItems     []LineItemResponse `json:"line_items"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	res := ProposalResponse{
		ID:            p.ID,
		RequestID:     p.RequestID,
		AgentID:       p.AgentID,
		TotalAmount:   p.TotalAmount,
		Status:        string(p.Status),
		DocumentState: string(p.DocumentState()),
		LineItems:     make([]LineItemResponse, 0, len(p.LineItems)),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.DocumentReady() {
		res.PDFPath = &p.PDFPath
	}
	for _, li := range p.LineItems {
		res.LineItems = append(res.LineItems, LineItemResponse{
			ID:          li.ID,
			Position:    li.Position,
			Description: li.Description,
			Price:       li.Price,
		})
	}
	return res
}
