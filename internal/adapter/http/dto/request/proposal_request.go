package request

import (
	"strings"

	"agency_ops/internal/domain/entities"
)

// LineItemRequest uses a pointer price so that an explicit 0 is accepted while a
// missing price is rejected at bind time.
type LineItemRequest struct {
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
}

type CreateProposalRequest struct {
	RequestID string            `json:"request_id" binding:"required"`
	Items     []LineItemRequest `json:"items" binding:"dive"`
}

func (r CreateProposalRequest) ResolveRequestID() string {
	return strings.TrimSpace(r.RequestID)
}

func (r CreateProposalRequest) ToLineItems() []entities.LineItemInput {
	out := make([]entities.LineItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, entities.LineItemInput{Description: it.Description, Price: *it.Price})
	}
	return out
}
