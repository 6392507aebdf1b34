package interfaces

import (
	"context"

	"agency_ops/internal/domain/entities"
)

// INotificationGateway abstracts email delivery (SMTP in production).
//
// Every failure, including a timeout of ctx, is returned to the caller; the gateway
// never reports success for a message it did not hand over to the transport.
type INotificationGateway interface {
	SendProposalNotification(ctx context.Context, n entities.ProposalNotification) error
	SendAccountApprovalNotification(ctx context.Context, email, name string) error
}
