package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateRequestInput is what a client submits for a new service request.
type CreateRequestInput struct {
	CategoryID string
	Details    string
	Priority   string
}

// IRequestUseCase exposes service request operations.
//
//   - POST /requests => CreateRequest()
//   - GET /requests, GET /requests/{id} => ListRequests(), GetRequest()
//   - PATCH /requests/{id}/assign => AssignAgent()
type IRequestUseCase interface {
	CreateRequest(ctx context.Context, principal entities.Principal, in CreateRequestInput) (entities.ServiceRequest, error)
	ListRequests(ctx context.Context, principal entities.Principal, status string) ([]entities.ServiceRequest, error)
	GetRequest(ctx context.Context, principal entities.Principal, id string) (entities.ServiceRequest, error)
	AssignAgent(ctx context.Context, principal entities.Principal, requestID, agentID string) (entities.ServiceRequest, error)
}

type RequestUseCase struct {
	requests   interfaces.IServiceRequestRepository
	accounts   interfaces.IAccountRepository
	categories interfaces.ICategoryRepository
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(requests interfaces.IServiceRequestRepository, accounts interfaces.IAccountRepository, categories interfaces.ICategoryRepository) *RequestUseCase {
	return &RequestUseCase{requests: requests, accounts: accounts, categories: categories}
}

func (u *RequestUseCase) CreateRequest(ctx context.Context, principal entities.Principal, in CreateRequestInput) (entities.ServiceRequest, error) {
	if err := requireRole(principal, entities.RoleClient); err != nil {
		return entities.ServiceRequest{}, err
	}
	details := strings.TrimSpace(in.Details)
	if details == "" {
		return entities.ServiceRequest{}, ErrInvalidDetails
	}
	priority, ok := entities.ParseRequestPriority(in.Priority)
	if !ok {
		return entities.ServiceRequest{}, ErrInvalidPriority
	}
	categoryID := strings.TrimSpace(in.CategoryID)
	if categoryID == "" {
		return entities.ServiceRequest{}, ErrUnknownCategory
	}

	client, err := u.accounts.GetClientByUserID(ctx, principal.ID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if client.ID == "" {
		return entities.ServiceRequest{}, ErrClientProfileNotFound
	}
	category, err := u.categories.GetByID(ctx, categoryID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if category.ID == "" {
		return entities.ServiceRequest{}, ErrUnknownCategory
	}

	now := time.Now().UTC()
	r := entities.ServiceRequest{
		ID:         uuid.NewString(),
		ClientID:   client.ID,
		CategoryID: category.ID,
		Details:    details,
		Priority:   priority,
		Status:     entities.RequestStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.requests.Create(ctx, r)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	zap.L().Info("[request][usecase] created", zap.String("request_id", created.ID), zap.String("client_id", created.ClientID))
	return created, nil
}

func (u *RequestUseCase) ListRequests(ctx context.Context, principal entities.Principal, status string) ([]entities.ServiceRequest, error) {
	status = strings.TrimSpace(status)
	if status != "" {
		parsed, ok := entities.ParseRequestStatus(status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		status = string(parsed)
	}
	scope, err := resolveScope(ctx, u.accounts, principal)
	if err != nil {
		return nil, err
	}
	filter := scope.Filter(status)
	if filter.DenyAll {
		return []entities.ServiceRequest{}, nil
	}
	return u.requests.List(ctx, filter)
}

func (u *RequestUseCase) GetRequest(ctx context.Context, principal entities.Principal, id string) (entities.ServiceRequest, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	scope, err := resolveScope(ctx, u.accounts, principal)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if !scope.CanSee(r.Owner()) {
		return entities.ServiceRequest{}, ErrNotVisible
	}
	return r, nil
}

// AssignAgent sets the agent of a request. A Quoted request keeps its status
// (the status never moves backwards); a Converted request can no longer change.
func (u *RequestUseCase) AssignAgent(ctx context.Context, principal entities.Principal, requestID, agentID string) (entities.ServiceRequest, error) {
	if err := requireRole(principal, entities.RoleAdmin); err != nil {
		return entities.ServiceRequest{}, err
	}
	requestID, err := requireID(requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	agentID, err = requireID(agentID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	agent, err := u.accounts.GetUserByID(ctx, agentID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if agent.ID == "" {
		return entities.ServiceRequest{}, ErrUserNotFound
	}
	if agent.Role != entities.RoleAgent {
		return entities.ServiceRequest{}, ErrNotAnAgent
	}

	r, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}

	var next entities.RequestStatus
	switch r.Status {
	case entities.RequestStatusPending, entities.RequestStatusAssigned:
		next = entities.RequestStatusAssigned
	case entities.RequestStatusQuoted:
		next = entities.RequestStatusQuoted
	case entities.RequestStatusConverted:
		return entities.ServiceRequest{}, ErrRequestAlreadyConverted
	default:
		return entities.ServiceRequest{}, fmt.Errorf("%w: stored request status %q", ErrTransactionFailed, r.Status)
	}
	if r.AgentID == agent.ID && r.Status == next {
		return r, nil
	}

	updated, err := u.requests.AssignAgent(ctx, r.ID, agent.ID, next, r.Status)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			if cur, rerr := u.requests.GetByID(ctx, r.ID); rerr == nil && cur.Status == entities.RequestStatusConverted {
				return entities.ServiceRequest{}, ErrRequestAlreadyConverted
			}
		}
		return entities.ServiceRequest{}, fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}
	zap.L().Info("[request][usecase] agent assigned",
		zap.String("request_id", updated.ID), zap.String("agent_id", updated.AgentID), zap.String("status", string(updated.Status)))
	return updated, nil
}
