package usecase

import (
	"context"
	"sort"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const timelineFanOut = 8

type ITimelineUseCase interface {
	BuildClientTimeline(ctx context.Context, principal entities.Principal, clientID string) ([]entities.TimelineEntry, error)
}

// TimelineUseCase projects the requests of one client together with their
// proposal and project. It never writes.
type TimelineUseCase struct {
	requests   interfaces.IServiceRequestRepository
	proposals  interfaces.IProposalRepository
	projects   interfaces.IProjectRepository
	accounts   interfaces.IAccountRepository
	categories interfaces.ICategoryRepository
}

var _ ITimelineUseCase = (*TimelineUseCase)(nil)

func NewTimelineUseCase(
	requests interfaces.IServiceRequestRepository,
	proposals interfaces.IProposalRepository,
	projects interfaces.IProjectRepository,
	accounts interfaces.IAccountRepository,
	categories interfaces.ICategoryRepository,
) *TimelineUseCase {
	return &TimelineUseCase{requests: requests, proposals: proposals, projects: projects, accounts: accounts, categories: categories}
}

// BuildClientTimeline returns one entry per request, newest first. Admins may read
// any client; a client may read its own timeline.
//
// Requests are listed before their proposals and projects are loaded, so a
// lifecycle step committed in between shows up only on the later reads. Each
// entry's status is advanced to what its proposal and project imply, which is
// safe because request status never moves backwards.
func (u *TimelineUseCase) BuildClientTimeline(ctx context.Context, principal entities.Principal, clientID string) ([]entities.TimelineEntry, error) {
	clientID, err := requireID(clientID)
	if err != nil {
		return nil, err
	}
	scope, err := resolveScope(ctx, u.accounts, principal)
	if err != nil {
		return nil, err
	}
	if scope.Role != entities.RoleAdmin && (scope.Role != entities.RoleClient || scope.ClientID != clientID) {
		return nil, ErrNotVisible
	}

	client, err := u.accounts.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client.ID == "" {
		return nil, ErrClientNotFound
	}

	reqs, err := u.requests.List(ctx, entities.ListFilter{ClientID: clientID})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reqs, func(i, j int) bool {
		if reqs[i].CreatedAt.Equal(reqs[j].CreatedAt) {
			return reqs[i].ID > reqs[j].ID
		}
		return reqs[i].CreatedAt.After(reqs[j].CreatedAt)
	})

	var agentIDs []string
	seen := map[string]bool{}
	for _, r := range reqs {
		if r.AgentID != "" && !seen[r.AgentID] {
			seen[r.AgentID] = true
			agentIDs = append(agentIDs, r.AgentID)
		}
	}

	proposals := make([]entities.Proposal, len(reqs))
	projects := make([]entities.Project, len(reqs))
	agents := make([]entities.User, len(agentIDs))
	var categories []entities.ServiceCategory

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(timelineFanOut)
	g.Go(func() error {
		var err error
		categories, err = u.categories.List(gctx)
		return err
	})
	for i, id := range agentIDs {
		i, id := i, id
		g.Go(func() error {
			var err error
			agents[i], err = u.accounts.GetUserByID(gctx, id)
			return err
		})
	}
	for i, r := range reqs {
		i, r := i, r
		g.Go(func() error {
			var err error
			proposals[i], err = u.proposals.GetByRequestID(gctx, r.ID)
			if err != nil {
				return err
			}
			projects[i], err = u.projects.GetByRequestID(gctx, r.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Warn("[timeline][usecase] load failed", zap.String("client_id", clientID), zap.Error(err))
		return nil, err
	}

	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	agentNames := make(map[string]string, len(agents))
	for _, a := range agents {
		if a.ID != "" {
			agentNames[a.ID] = a.FullName
		}
	}

	out := make([]entities.TimelineEntry, 0, len(reqs))
	for i, r := range reqs {
		e := entities.TimelineEntry{
			RequestID:     r.ID,
			Category:      entities.DefaultTimelineCategory,
			Details:       r.Details,
			RequestDate:   r.CreatedAt,
			RequestStatus: settledRequestStatus(r.Status, proposals[i], projects[i]),
		}
		if name, ok := categoryNames[r.CategoryID]; ok && name != "" {
			e.Category = name
		}
		if name, ok := agentNames[r.AgentID]; ok {
			e.AgentName = &name
		}
		if p := proposals[i]; p.ID != "" {
			e.Proposal = &entities.TimelineProposal{
				ID:     p.ID,
				Status: p.Status,
				Amount: p.TotalAmount,
				Date:   p.CreatedAt,
				PDF:    p.PDFPath,
			}
		}
		if p := projects[i]; p.ID != "" {
			e.Project = &entities.TimelineProject{
				ID:             p.ID,
				Status:         p.GlobalStatus,
				Progress:       p.ProgressPercent,
				StartDate:      p.CreatedAt,
				CompletionDate: p.ECD,
			}
		}
		out = append(out, e)
	}
	return out, nil
}

// settledRequestStatus is the furthest of the listed status and the status the
// proposal and project imply.
func settledRequestStatus(listed entities.RequestStatus, p entities.Proposal, pr entities.Project) entities.RequestStatus {
	implied := listed
	switch {
	case pr.ID != "", p.Status == entities.ProposalStatusAccepted:
		implied = entities.RequestStatusConverted
	case p.Status == entities.ProposalStatusSent:
		implied = entities.RequestStatusQuoted
	}
	if listed.CanAdvanceTo(implied) {
		return implied
	}
	return listed
}
