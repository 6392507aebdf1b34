package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IProposalUseCase drives a proposal from draft to an accepted project.
//
// Lifecycle:
//   - CreateProposal replaces any previous proposal of the request (Draft, document pending)
//   - RegenerateDocument retries a failed document generation
//   - SendProposal notifies the client, then flips Proposal=Sent and Request=Quoted
//   - AcceptProposal flips Proposal=Accepted, Request=Converted and creates the Project
type IProposalUseCase interface {
	CreateProposal(ctx context.Context, principal entities.Principal, requestID string, items []entities.LineItemInput) (entities.Proposal, error)
	GetProposal(ctx context.Context, principal entities.Principal, id string) (entities.Proposal, error)
	RegenerateDocument(ctx context.Context, principal entities.Principal, id string) (entities.Proposal, error)
	SendProposal(ctx context.Context, principal entities.Principal, id string) (entities.Proposal, error)
	AcceptProposal(ctx context.Context, principal entities.Principal, id string) (entities.Project, error)
}

type ProposalUseCase struct {
	requests  interfaces.IServiceRequestRepository
	proposals interfaces.IProposalRepository
	accounts  interfaces.IAccountRepository
	tx        interfaces.ITransactor
	documents interfaces.IDocumentGenerator
	notifier  interfaces.INotificationGateway
	// externalTimeout bounds each call to the document generator and the notifier.
	externalTimeout time.Duration
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	requests interfaces.IServiceRequestRepository,
	proposals interfaces.IProposalRepository,
	accounts interfaces.IAccountRepository,
	tx interfaces.ITransactor,
	documents interfaces.IDocumentGenerator,
	notifier interfaces.INotificationGateway,
	externalTimeout time.Duration,
) *ProposalUseCase {
	if externalTimeout <= 0 {
		externalTimeout = 15 * time.Second
	}
	return &ProposalUseCase{
		requests:        requests,
		proposals:       proposals,
		accounts:        accounts,
		tx:              tx,
		documents:       documents,
		notifier:        notifier,
		externalTimeout: externalTimeout,
	}
}

func (u *ProposalUseCase) CreateProposal(ctx context.Context, principal entities.Principal, requestID string, items []entities.LineItemInput) (entities.Proposal, error) {
	requestID, err := requireID(requestID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if err := validateLineItems(items); err != nil {
		return entities.Proposal{}, err
	}

	req, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if err := u.authorizeManage(ctx, principal, req); err != nil {
		return entities.Proposal{}, err
	}
	switch req.Status {
	case entities.RequestStatusPending:
		return entities.Proposal{}, ErrRequestNotAssigned
	case entities.RequestStatusConverted:
		return entities.Proposal{}, ErrRequestAlreadyConverted
	}

	agentID := req.AgentID
	if agentID == "" {
		agentID = principal.ID
	}
	now := time.Now().UTC()
	p := entities.Proposal{
		ID:        uuid.NewString(),
		RequestID: req.ID,
		AgentID:   agentID,
		Status:    entities.ProposalStatusDraft,
		PDFPath:   entities.ProposalDocumentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	lineItems := make([]entities.ProposalLineItem, 0, len(items))
	for i, in := range items {
		lineItems = append(lineItems, entities.ProposalLineItem{
			ID:          uuid.NewString(),
			ProposalID:  p.ID,
			Position:    i + 1,
			Description: strings.TrimSpace(in.Description),
			Price:       in.Price,
		})
	}
	p.TotalAmount = entities.SumLineItems(lineItems)

	zap.L().Info("[proposal][usecase] create start",
		zap.String("request_id", req.ID), zap.String("proposal_id", p.ID), zap.Int("items", len(lineItems)))

	err = u.tx.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ILifecycleTx) error {
		allowed := []entities.RequestStatus{entities.RequestStatusAssigned, entities.RequestStatusQuoted}
		if err := tx.GuardRequestStatus(ctx, req.ID, allowed); err != nil {
			return err
		}
		if err := tx.DeleteProposalsByRequestID(ctx, req.ID); err != nil {
			return err
		}
		if err := tx.CreateProposal(ctx, p); err != nil {
			return err
		}
		return tx.CreateLineItems(ctx, lineItems)
	})
	if err != nil {
		zap.L().Warn("[proposal][usecase] create transaction failed", zap.String("request_id", req.ID), zap.Error(err))
		if errors.Is(err, interfaces.ErrConditionFailed) {
			if cur, rerr := u.requests.GetByID(ctx, req.ID); rerr == nil && cur.Status == entities.RequestStatusConverted {
				return entities.Proposal{}, ErrRequestAlreadyConverted
			}
		}
		return entities.Proposal{}, fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}
	p.LineItems = lineItems

	// The proposal is committed; a document failure leaves it as a recoverable draft.
	withDoc, err := u.attachDocument(ctx, p, req)
	if err != nil {
		zap.L().Warn("[proposal][usecase] document generation failed; proposal left pending-document",
			zap.String("proposal_id", p.ID), zap.Error(err))
		return p, nil
	}
	zap.L().Info("[proposal][usecase] create success",
		zap.String("proposal_id", withDoc.ID), zap.Float64("total", withDoc.TotalAmount))
	return withDoc, nil
}

func (u *ProposalUseCase) GetProposal(ctx context.Context, principal entities.Principal, id string) (entities.Proposal, error) {
	p, req, err := u.loadProposal(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	scope, err := resolveScope(ctx, u.accounts, principal)
	if err != nil {
		return entities.Proposal{}, err
	}
	if !scope.CanSee(req.Owner()) {
		return entities.Proposal{}, ErrNotVisible
	}
	items, err := u.proposals.ListLineItems(ctx, p.ID)
	if err != nil {
		return entities.Proposal{}, err
	}
	p.LineItems = items
	return p, nil
}

func (u *ProposalUseCase) RegenerateDocument(ctx context.Context, principal entities.Principal, id string) (entities.Proposal, error) {
	p, req, err := u.loadProposal(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if err := u.authorizeManage(ctx, principal, req); err != nil {
		return entities.Proposal{}, err
	}
	switch p.Status {
	case entities.ProposalStatusAccepted:
		return entities.Proposal{}, ErrAlreadyAccepted
	case entities.ProposalStatusSent:
		return entities.Proposal{}, ErrProposalNotDraft
	}

	items, err := u.proposals.ListLineItems(ctx, p.ID)
	if err != nil {
		return entities.Proposal{}, err
	}
	p.LineItems = items

	updated, err := u.attachDocument(ctx, p, req)
	if err != nil {
		zap.L().Warn("[proposal][usecase] regenerate document failed", zap.String("proposal_id", p.ID), zap.Error(err))
		if errors.Is(err, ErrProposalNotFound) || errors.Is(err, ErrProposalNotDraft) || errors.Is(err, ErrAlreadyAccepted) {
			return entities.Proposal{}, err
		}
		return entities.Proposal{}, fmt.Errorf("%w: %w", ErrDocumentGenerationFailed, err)
	}
	return updated, nil
}

func (u *ProposalUseCase) SendProposal(ctx context.Context, principal entities.Principal, id string) (entities.Proposal, error) {
	p, req, err := u.loadProposal(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if err := u.authorizeManage(ctx, principal, req); err != nil {
		return entities.Proposal{}, err
	}
	if p.Status == entities.ProposalStatusAccepted {
		return entities.Proposal{}, ErrAlreadyAccepted
	}
	if !p.DocumentReady() {
		return entities.Proposal{}, ErrDocumentNotReady
	}

	n, err := u.buildNotification(ctx, p, req)
	if err != nil {
		return entities.Proposal{}, err
	}

	zap.L().Info("[proposal][usecase] sending notification",
		zap.String("proposal_id", p.ID), zap.String("client_email", n.ClientEmail))
	nctx, cancel := context.WithTimeout(ctx, u.externalTimeout)
	err = u.notifier.SendProposalNotification(nctx, n)
	cancel()
	if err != nil {
		zap.L().Warn("[proposal][usecase] notification failed; status unchanged", zap.String("proposal_id", p.ID), zap.Error(err))
		return entities.Proposal{}, fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	err = u.tx.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ILifecycleTx) error {
		fromProposal := []entities.ProposalStatus{entities.ProposalStatusDraft, entities.ProposalStatusSent}
		if err := tx.TransitionProposal(ctx, p.ID, entities.ProposalStatusSent, fromProposal); err != nil {
			return err
		}
		fromRequest := []entities.RequestStatus{entities.RequestStatusAssigned, entities.RequestStatusQuoted}
		return tx.TransitionRequest(ctx, req.ID, entities.RequestStatusQuoted, fromRequest)
	})
	if err != nil {
		zap.L().Warn("[proposal][usecase] send transaction failed", zap.String("proposal_id", p.ID), zap.Error(err))
		return entities.Proposal{}, u.classifyConflict(ctx, p.ID, err)
	}

	p.Status = entities.ProposalStatusSent
	p.UpdatedAt = time.Now().UTC()
	zap.L().Info("[proposal][usecase] send success", zap.String("proposal_id", p.ID), zap.String("request_id", req.ID))
	return p, nil
}

func (u *ProposalUseCase) AcceptProposal(ctx context.Context, principal entities.Principal, id string) (entities.Project, error) {
	if err := requireRole(principal, entities.RoleClient); err != nil {
		return entities.Project{}, err
	}
	client, err := u.accounts.GetClientByUserID(ctx, principal.ID)
	if err != nil {
		return entities.Project{}, err
	}
	if client.ID == "" {
		return entities.Project{}, ErrClientProfileNotFound
	}

	p, req, err := u.loadProposal(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if req.ClientID != client.ID {
		return entities.Project{}, ErrNotProposalOwner
	}
	switch p.Status {
	case entities.ProposalStatusAccepted:
		return entities.Project{}, ErrAlreadyAccepted
	case entities.ProposalStatusDraft:
		return entities.Project{}, ErrProposalNotSent
	}

	agentID := req.AgentID
	if agentID == "" {
		agentID = p.AgentID
	}
	now := time.Now().UTC()
	project := entities.Project{
		ID:           uuid.NewString(),
		RequestID:    req.ID,
		ClientID:     req.ClientID,
		AgentID:      agentID,
		GlobalStatus: entities.ProjectStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = u.tx.WithinTransaction(ctx, func(ctx context.Context, tx interfaces.ILifecycleTx) error {
		if err := tx.TransitionProposal(ctx, p.ID, entities.ProposalStatusAccepted, []entities.ProposalStatus{entities.ProposalStatusSent}); err != nil {
			return err
		}
		if err := tx.TransitionRequest(ctx, req.ID, entities.RequestStatusConverted, []entities.RequestStatus{entities.RequestStatusQuoted}); err != nil {
			return err
		}
		return tx.CreateProject(ctx, project)
	})
	if err != nil {
		zap.L().Warn("[proposal][usecase] accept transaction failed", zap.String("proposal_id", p.ID), zap.Error(err))
		return entities.Project{}, u.classifyConflict(ctx, p.ID, err)
	}

	zap.L().Info("[proposal][usecase] accept success",
		zap.String("proposal_id", p.ID), zap.String("project_id", project.ID), zap.String("agent_id", project.AgentID))
	return project, nil
}

// attachDocument renders the proposal document and stores its reference.
func (u *ProposalUseCase) attachDocument(ctx context.Context, p entities.Proposal, req entities.ServiceRequest) (entities.Proposal, error) {
	label := req.ClientID
	if c, err := u.accounts.GetClientByID(ctx, req.ClientID); err == nil && c.CompanyName != "" {
		label = c.CompanyName
	}

	dctx, cancel := context.WithTimeout(ctx, u.externalTimeout)
	ref, err := u.documents.Generate(dctx, entities.ProposalDocument{
		ProposalID:  p.ID,
		ClientLabel: label,
		Items:       p.LineItems,
		TotalAmount: p.TotalAmount,
	})
	cancel()
	if err != nil {
		return entities.Proposal{}, err
	}
	if strings.TrimSpace(ref) == "" || ref == entities.ProposalDocumentPending {
		return entities.Proposal{}, errors.New("document generator returned an empty reference")
	}

	updated, err := u.proposals.UpdateDocument(ctx, p.ID, ref)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, u.documentConflict(ctx, p.ID)
	}
	updated.LineItems = p.LineItems
	return updated, nil
}

func (u *ProposalUseCase) buildNotification(ctx context.Context, p entities.Proposal, req entities.ServiceRequest) (entities.ProposalNotification, error) {
	client, err := u.accounts.GetClientByID(ctx, req.ClientID)
	if err != nil {
		return entities.ProposalNotification{}, err
	}
	if client.ID == "" {
		return entities.ProposalNotification{}, ErrClientNotFound
	}
	clientUser, err := u.accounts.GetUserByID(ctx, client.UserID)
	if err != nil {
		return entities.ProposalNotification{}, err
	}
	if clientUser.ID == "" {
		return entities.ProposalNotification{}, ErrUserNotFound
	}
	agent, err := u.accounts.GetUserByID(ctx, p.AgentID)
	if err != nil {
		return entities.ProposalNotification{}, err
	}
	if agent.ID == "" {
		return entities.ProposalNotification{}, ErrUserNotFound
	}

	name := clientUser.FullName
	if name == "" {
		name = client.CompanyName
	}
	return entities.ProposalNotification{
		ProposalID:  p.ID,
		ClientEmail: clientUser.Email,
		ClientName:  name,
		AgentEmail:  agent.Email,
		AgentName:   agent.FullName,
		DocumentRef: p.PDFPath,
		TotalAmount: p.TotalAmount,
	}, nil
}

// classifyConflict turns a failed lifecycle transaction into a domain error. A
// failed condition is re-read so the caller learns why it lost the race.
// documentConflict explains why a document reference was not stored: the
// proposal was replaced, or it left Draft while the document was rendering.
func (u *ProposalUseCase) documentConflict(ctx context.Context, proposalID string) error {
	cur, err := u.proposals.GetByID(ctx, proposalID)
	switch {
	case err != nil:
		return err
	case cur.ID == "":
		return ErrProposalNotFound
	case cur.Status == entities.ProposalStatusAccepted:
		return ErrAlreadyAccepted
	default:
		return ErrProposalNotDraft
	}
}

func (u *ProposalUseCase) classifyConflict(ctx context.Context, proposalID string, err error) error {
	if !errors.Is(err, interfaces.ErrConditionFailed) {
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}
	cur, rerr := u.proposals.GetByID(ctx, proposalID)
	switch {
	case rerr != nil:
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	case cur.ID == "":
		return ErrProposalNotFound
	case cur.Status == entities.ProposalStatusAccepted:
		return ErrAlreadyAccepted
	default:
		return fmt.Errorf("%w: %w", ErrTransactionFailed, err)
	}
}

func (u *ProposalUseCase) loadRequest(ctx context.Context, id string) (entities.ServiceRequest, error) {
	req, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if req.ID == "" {
		return entities.ServiceRequest{}, ErrRequestNotFound
	}
	return req, nil
}

func (u *ProposalUseCase) loadProposal(ctx context.Context, id string) (entities.Proposal, entities.ServiceRequest, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.Proposal{}, entities.ServiceRequest{}, err
	}
	p, err := u.proposals.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, entities.ServiceRequest{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, entities.ServiceRequest{}, ErrProposalNotFound
	}
	req, err := u.loadRequest(ctx, p.RequestID)
	if err != nil {
		return entities.Proposal{}, entities.ServiceRequest{}, err
	}
	return p, req, nil
}

func (u *ProposalUseCase) authorizeManage(ctx context.Context, principal entities.Principal, req entities.ServiceRequest) error {
	if err := requireRole(principal, entities.RoleAgent, entities.RoleAdmin); err != nil {
		return err
	}
	scope, err := resolveScope(ctx, u.accounts, principal)
	if err != nil {
		return err
	}
	if !scope.CanManage(req.Owner()) {
		return ErrNotRequestAgent
	}
	return nil
}

func validateLineItems(items []entities.LineItemInput) error {
	if len(items) == 0 {
		return ErrEmptyLineItems
	}
	if len(items) > entities.MaxProposalLineItems {
		return ErrTooManyLineItems
	}
	for _, it := range items {
		if strings.TrimSpace(it.Description) == "" {
			return ErrInvalidLineItem
		}
		if it.Price < 0 || math.IsNaN(it.Price) || math.IsInf(it.Price, 0) {
			return ErrInvalidLineItem
		}
	}
	return nil
}
