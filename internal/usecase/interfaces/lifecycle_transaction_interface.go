package interfaces

import (
	"context"
	"errors"

	"agency_ops/internal/domain/entities"
)

// ErrConditionFailed is returned when a guarded write finds the row in an
// unexpected state (or missing). Callers re-read to classify the conflict.
var ErrConditionFailed = errors.New("store condition failed")

// ITransactor runs fn inside one atomic unit. If fn returns an error nothing is
// persisted. Cancellation of ctx is honoured until the commit starts; the commit
// itself always runs to completion.
type ITransactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx ILifecycleTx) error) error
}

// ILifecycleTx is the set of writes the proposal lifecycle performs atomically.
//
// Implementations may defer writes until commit, so a condition violation can
// surface either from the method call or from WithinTransaction.
type ILifecycleTx interface {
	GuardRequestStatus(ctx context.Context, requestID string, allowed []entities.RequestStatus) error
	DeleteProposalsByRequestID(ctx context.Context, requestID string) error
	CreateProposal(ctx context.Context, p entities.Proposal) error
	CreateLineItems(ctx context.Context, items []entities.ProposalLineItem) error
	TransitionProposal(ctx context.Context, id string, to entities.ProposalStatus, from []entities.ProposalStatus) error
	TransitionRequest(ctx context.Context, id string, to entities.RequestStatus, from []entities.RequestStatus) error
	CreateProject(ctx context.Context, p entities.Project) error
}

// IHealthChecker verifies the store is reachable.
type IHealthChecker interface {
	Ping(ctx context.Context) error
}
