package interfaces

import (
	"context"

	"agency_ops/internal/domain/entities"
)

// IProposalRepository reads proposals and records the generated document.
// Creating and replacing proposals goes through ILifecycleTx.
type IProposalRepository interface {
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Proposal, error)
	ListLineItems(ctx context.Context, proposalID string) ([]entities.ProposalLineItem, error)
	// UpdateDocument only touches Draft proposals; a proposal that is gone or
	// no longer a draft yields a zero value.
	UpdateDocument(ctx context.Context, id, pdfPath string) (entities.Proposal, error)
}
