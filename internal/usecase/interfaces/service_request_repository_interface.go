package interfaces

import (
	"context"

	"agency_ops/internal/domain/entities"
)

// IServiceRequestRepository abstracts persistence for ServiceRequest.
//
// Status columns are only written through AssignAgent and ILifecycleTx; there is no
// generic update and no delete.
type IServiceRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	List(ctx context.Context, filter entities.ListFilter) ([]entities.ServiceRequest, error)
	// AssignAgent applies only while the stored status still equals expected;
	// otherwise it returns ErrConditionFailed.
	AssignAgent(ctx context.Context, id, agentID string, status, expected entities.RequestStatus) (entities.ServiceRequest, error)
}
