package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"
	mock_interfaces "agency_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type proposalFixture struct {
	requests  *mock_interfaces.MockIServiceRequestRepository
	proposals *mock_interfaces.MockIProposalRepository
	accounts  *mock_interfaces.MockIAccountRepository
	tx        *mock_interfaces.MockITransactor
	ltx       *mock_interfaces.MockILifecycleTx
	docs      *mock_interfaces.MockIDocumentGenerator
	notifier  *mock_interfaces.MockINotificationGateway
	uc        *ProposalUseCase
}

func newProposalFixture(t *testing.T) *proposalFixture {
	ctrl := gomock.NewController(t)
	f := &proposalFixture{
		requests:  mock_interfaces.NewMockIServiceRequestRepository(ctrl),
		proposals: mock_interfaces.NewMockIProposalRepository(ctrl),
		accounts:  mock_interfaces.NewMockIAccountRepository(ctrl),
		tx:        mock_interfaces.NewMockITransactor(ctrl),
		ltx:       mock_interfaces.NewMockILifecycleTx(ctrl),
		docs:      mock_interfaces.NewMockIDocumentGenerator(ctrl),
		notifier:  mock_interfaces.NewMockINotificationGateway(ctrl),
	}
	f.uc = NewProposalUseCase(f.requests, f.proposals, f.accounts, f.tx, f.docs, f.notifier, time.Second)
	return f
}

// runTx makes the transactor invoke fn with the mocked lifecycle tx.
func (f *proposalFixture) runTx() {
	f.tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, interfaces.ILifecycleTx) error) error {
			return fn(ctx, f.ltx)
		},
	)
}

var (
	agent7     = entities.Principal{ID: "7", Role: entities.RoleAgent}
	otherAgent = entities.Principal{ID: "8", Role: entities.RoleAgent}
	adminUser  = entities.Principal{ID: "admin-1", Role: entities.RoleAdmin}
	clientUser = entities.Principal{ID: "user-c1", Role: entities.RoleClient}
)

func assignedRequest() entities.ServiceRequest {
	return entities.ServiceRequest{ID: "req-1", ClientID: "client-1", AgentID: "7", Status: entities.RequestStatusAssigned}
}

func designAndDev() []entities.LineItemInput {
	return []entities.LineItemInput{{Description: "Design", Price: 500}, {Description: "Dev", Price: 1500}}
}

func TestProposalUseCase_CreateProposal_Validation(t *testing.T) {
	uc := NewProposalUseCase(nil, nil, nil, nil, nil, nil, time.Second)

	cases := []struct {
		name  string
		reqID string
		items []entities.LineItemInput
		want  error
	}{
		{name: "empty request id", reqID: " ", items: designAndDev(), want: ErrInvalidID},
		{name: "no items", reqID: "req-1", items: nil, want: ErrEmptyLineItems},
		{name: "negative price", reqID: "req-1", items: []entities.LineItemInput{{Description: "x", Price: -1}}, want: ErrInvalidLineItem},
		{name: "blank description", reqID: "req-1", items: []entities.LineItemInput{{Description: "  ", Price: 1}}, want: ErrInvalidLineItem},
		{name: "too many items", reqID: "req-1", items: make([]entities.LineItemInput, entities.MaxProposalLineItems+1), want: ErrTooManyLineItems},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateProposal(context.Background(), agent7, tc.reqID, tc.items)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestProposalUseCase_CreateProposal(t *testing.T) {
	t.Run("request not found", func(t *testing.T) {
		f := newProposalFixture(t)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{}, nil)

		_, err := f.uc.CreateProposal(context.Background(), agent7, "req-1", designAndDev())
		if !errors.Is(err, ErrRequestNotFound) || !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("client role rejected", func(t *testing.T) {
		f := newProposalFixture(t)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)

		_, err := f.uc.CreateProposal(context.Background(), clientUser, "req-1", designAndDev())
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("agent not assigned", func(t *testing.T) {
		f := newProposalFixture(t)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)

		_, err := f.uc.CreateProposal(context.Background(), otherAgent, "req-1", designAndDev())
		if !errors.Is(err, ErrNotRequestAgent) {
			t.Fatalf("expected ErrNotRequestAgent, got %v", err)
		}
	})

	t.Run("pending request", func(t *testing.T) {
		f := newProposalFixture(t)
		req := assignedRequest()
		req.Status = entities.RequestStatusPending
		req.AgentID = ""
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(req, nil)

		_, err := f.uc.CreateProposal(context.Background(), adminUser, "req-1", designAndDev())
		if !errors.Is(err, ErrRequestNotAssigned) {
			t.Fatalf("expected ErrRequestNotAssigned, got %v", err)
		}
	})

	t.Run("converted request", func(t *testing.T) {
		f := newProposalFixture(t)
		req := assignedRequest()
		req.Status = entities.RequestStatusConverted
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(req, nil)

		_, err := f.uc.CreateProposal(context.Background(), agent7, "req-1", designAndDev())
		if !errors.Is(err, ErrAlreadyAccepted) {
			t.Fatalf("expected ErrAlreadyAccepted, got %v", err)
		}
	})

	t.Run("success replaces previous proposal and attaches document", func(t *testing.T) {
		f := newProposalFixture(t)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)
		f.runTx()

		var created entities.Proposal
		gomock.InOrder(
			f.ltx.EXPECT().GuardRequestStatus(gomock.Any(), "req-1",
				[]entities.RequestStatus{entities.RequestStatusAssigned, entities.RequestStatusQuoted}).Return(nil),
			f.ltx.EXPECT().DeleteProposalsByRequestID(gomock.Any(), "req-1").Return(nil),
			f.ltx.EXPECT().CreateProposal(gomock.Any(), gomock.AssignableToTypeOf(entities.Proposal{})).DoAndReturn(
				func(_ context.Context, p entities.Proposal) error {
					if p.Status != entities.ProposalStatusDraft || p.PDFPath != entities.ProposalDocumentPending {
						t.Fatalf("expected draft with placeholder, got %+v", p)
					}
					if p.TotalAmount != 2000 || p.AgentID != "7" {
						t.Fatalf("unexpected proposal: %+v", p)
					}
					created = p
					return nil
				},
			),
			f.ltx.EXPECT().CreateLineItems(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, items []entities.ProposalLineItem) error {
					if len(items) != 2 || items[0].ProposalID != created.ID || items[1].Position != 2 {
						t.Fatalf("unexpected items: %+v", items)
					}
					return nil
				},
			),
		)
		f.accounts.EXPECT().GetClientByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", CompanyName: "Acme"}, nil)
		f.docs.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, doc entities.ProposalDocument) (string, error) {
				if doc.ClientLabel != "Acme" || doc.TotalAmount != 2000 || len(doc.Items) != 2 {
					t.Fatalf("unexpected document input: %+v", doc)
				}
				return "/docs/p.pdf", nil
			},
		)
		f.proposals.EXPECT().UpdateDocument(gomock.Any(), gomock.Any(), "/docs/p.pdf").DoAndReturn(
			func(_ context.Context, id, path string) (entities.Proposal, error) {
				p := created
				p.PDFPath = path
				return p, nil
			},
		)

		p, err := f.uc.CreateProposal(context.Background(), agent7, "req-1", designAndDev())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.DocumentState() != entities.DocumentStateReady || len(p.LineItems) != 2 {
			t.Fatalf("expected document-ready proposal with items, got %+v", p)
		}
	})

	t.Run("document failure keeps committed draft", func(t *testing.T) {
		f := newProposalFixture(t)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)
		f.runTx()
		f.ltx.EXPECT().GuardRequestStatus(gomock.Any(), "req-1", gomock.Any()).Return(nil)
		f.ltx.EXPECT().DeleteProposalsByRequestID(gomock.Any(), "req-1").Return(nil)
		f.ltx.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).Return(nil)
		f.ltx.EXPECT().CreateLineItems(gomock.Any(), gomock.Any()).Return(nil)
		f.accounts.EXPECT().GetClientByID(gomock.Any(), "client-1").Return(entities.Client{}, nil)
		f.docs.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("renderer down"))

		p, err := f.uc.CreateProposal(context.Background(), agent7, "req-1", designAndDev())
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if p.PDFPath != entities.ProposalDocumentPending || p.Status != entities.ProposalStatusDraft {
			t.Fatalf("expected placeholder draft, got %+v", p)
		}
	})

	t.Run("lost race against accept", func(t *testing.T) {
		f := newProposalFixture(t)
		converted := assignedRequest()
		converted.Status = entities.RequestStatusConverted
		gomock.InOrder(
			f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil),
			f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(converted, nil),
		)
		f.runTx()
		f.ltx.EXPECT().GuardRequestStatus(gomock.Any(), "req-1", gomock.Any()).Return(interfaces.ErrConditionFailed)

		_, err := f.uc.CreateProposal(context.Background(), agent7, "req-1", designAndDev())
		if !errors.Is(err, ErrRequestAlreadyConverted) {
			t.Fatalf("expected ErrRequestAlreadyConverted, got %v", err)
		}
	})

	t.Run("transaction error", func(t *testing.T) {
		f := newProposalFixture(t)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)
		f.tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err := f.uc.CreateProposal(context.Background(), agent7, "req-1", designAndDev())
		if !errors.Is(err, ErrTransactionFailed) {
			t.Fatalf("expected ErrTransactionFailed, got %v", err)
		}
	})
}

func sentProposal() entities.Proposal {
	return entities.Proposal{ID: "prop-1", RequestID: "req-1", AgentID: "7", TotalAmount: 2000, Status: entities.ProposalStatusSent, PDFPath: "/docs/p.pdf"}
}

func (f *proposalFixture) expectRecipients() {
	f.accounts.EXPECT().GetClientByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", UserID: "user-c1", CompanyName: "Acme"}, nil)
	f.accounts.EXPECT().GetUserByID(gomock.Any(), "user-c1").Return(entities.User{ID: "user-c1", FullName: "Carla", Email: "carla@acme.test"}, nil)
	f.accounts.EXPECT().GetUserByID(gomock.Any(), "7").Return(entities.User{ID: "7", FullName: "Agent Seven", Email: "seven@agency.test"}, nil)
}

func TestProposalUseCase_SendProposal(t *testing.T) {
	t.Run("placeholder document", func(t *testing.T) {
		f := newProposalFixture(t)
		p := sentProposal()
		p.Status = entities.ProposalStatusDraft
		p.PDFPath = entities.ProposalDocumentPending
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)

		_, err := f.uc.SendProposal(context.Background(), agent7, "prop-1")
		if !errors.Is(err, ErrDocumentNotReady) {
			t.Fatalf("expected ErrDocumentNotReady, got %v", err)
		}
	})

	t.Run("already accepted", func(t *testing.T) {
		f := newProposalFixture(t)
		p := sentProposal()
		p.Status = entities.ProposalStatusAccepted
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)

		_, err := f.uc.SendProposal(context.Background(), agent7, "prop-1")
		if !errors.Is(err, ErrAlreadyAccepted) {
			t.Fatalf("expected ErrAlreadyAccepted, got %v", err)
		}
	})

	t.Run("notification failure leaves state untouched", func(t *testing.T) {
		f := newProposalFixture(t)
		p := sentProposal()
		p.Status = entities.ProposalStatusDraft
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)
		f.expectRecipients()
		f.notifier.EXPECT().SendProposalNotification(gomock.Any(), gomock.Any()).Return(errors.New("smtp 421"))

		_, err := f.uc.SendProposal(context.Background(), agent7, "prop-1")
		if !errors.Is(err, ErrNotificationFailed) {
			t.Fatalf("expected ErrNotificationFailed, got %v", err)
		}
	})

	t.Run("success flips proposal and request", func(t *testing.T) {
		f := newProposalFixture(t)
		p := sentProposal()
		p.Status = entities.ProposalStatusDraft
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)
		f.expectRecipients()
		f.notifier.EXPECT().SendProposalNotification(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, n entities.ProposalNotification) error {
				if _, ok := ctx.Deadline(); !ok {
					t.Fatalf("expected notification call to be bounded by a deadline")
				}
				if n.ClientEmail != "carla@acme.test" || n.AgentEmail != "seven@agency.test" || n.DocumentRef != "/docs/p.pdf" {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return nil
			},
		)
		f.runTx()
		gomock.InOrder(
			f.ltx.EXPECT().TransitionProposal(gomock.Any(), "prop-1", entities.ProposalStatusSent,
				[]entities.ProposalStatus{entities.ProposalStatusDraft, entities.ProposalStatusSent}).Return(nil),
			f.ltx.EXPECT().TransitionRequest(gomock.Any(), "req-1", entities.RequestStatusQuoted,
				[]entities.RequestStatus{entities.RequestStatusAssigned, entities.RequestStatusQuoted}).Return(nil),
		)

		res, err := f.uc.SendProposal(context.Background(), agent7, "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ProposalStatusSent {
			t.Fatalf("expected Sent, got %s", res.Status)
		}
	})

	t.Run("accepted while sending", func(t *testing.T) {
		f := newProposalFixture(t)
		accepted := sentProposal()
		accepted.Status = entities.ProposalStatusAccepted
		gomock.InOrder(
			f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(sentProposal(), nil),
			f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(accepted, nil),
		)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)
		f.expectRecipients()
		f.notifier.EXPECT().SendProposalNotification(gomock.Any(), gomock.Any()).Return(nil)
		f.runTx()
		f.ltx.EXPECT().TransitionProposal(gomock.Any(), "prop-1", gomock.Any(), gomock.Any()).Return(interfaces.ErrConditionFailed)

		_, err := f.uc.SendProposal(context.Background(), agent7, "prop-1")
		if !errors.Is(err, ErrAlreadyAccepted) {
			t.Fatalf("expected ErrAlreadyAccepted, got %v", err)
		}
	})
}

func TestProposalUseCase_AcceptProposal(t *testing.T) {
	quoted := assignedRequest()
	quoted.Status = entities.RequestStatusQuoted

	t.Run("agent cannot accept", func(t *testing.T) {
		f := newProposalFixture(t)
		_, err := f.uc.AcceptProposal(context.Background(), agent7, "prop-1")
		if !errors.Is(err, ErrRoleNotAllowed) {
			t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
		}
	})

	t.Run("other client", func(t *testing.T) {
		f := newProposalFixture(t)
		f.accounts.EXPECT().GetClientByUserID(gomock.Any(), "user-c1").Return(entities.Client{ID: "client-2"}, nil)
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(sentProposal(), nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(quoted, nil)

		_, err := f.uc.AcceptProposal(context.Background(), clientUser, "prop-1")
		if !errors.Is(err, ErrNotProposalOwner) {
			t.Fatalf("expected ErrNotProposalOwner, got %v", err)
		}
	})

	t.Run("draft cannot be accepted", func(t *testing.T) {
		f := newProposalFixture(t)
		p := sentProposal()
		p.Status = entities.ProposalStatusDraft
		f.accounts.EXPECT().GetClientByUserID(gomock.Any(), "user-c1").Return(entities.Client{ID: "client-1"}, nil)
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)

		_, err := f.uc.AcceptProposal(context.Background(), clientUser, "prop-1")
		if !errors.Is(err, ErrProposalNotSent) {
			t.Fatalf("expected ErrProposalNotSent, got %v", err)
		}
	})

	t.Run("success creates project with proposal agent as fallback", func(t *testing.T) {
		f := newProposalFixture(t)
		req := quoted
		req.AgentID = ""
		f.accounts.EXPECT().GetClientByUserID(gomock.Any(), "user-c1").Return(entities.Client{ID: "client-1"}, nil)
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(sentProposal(), nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(req, nil)
		f.runTx()
		gomock.InOrder(
			f.ltx.EXPECT().TransitionProposal(gomock.Any(), "prop-1", entities.ProposalStatusAccepted,
				[]entities.ProposalStatus{entities.ProposalStatusSent}).Return(nil),
			f.ltx.EXPECT().TransitionRequest(gomock.Any(), "req-1", entities.RequestStatusConverted,
				[]entities.RequestStatus{entities.RequestStatusQuoted}).Return(nil),
			f.ltx.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(nil),
		)

		project, err := f.uc.AcceptProposal(context.Background(), clientUser, "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if project.ID == "" || project.AgentID != "7" || project.ClientID != "client-1" || project.GlobalStatus != entities.ProjectStatusPending {
			t.Fatalf("unexpected project: %+v", project)
		}
	})

	t.Run("second accept loses", func(t *testing.T) {
		f := newProposalFixture(t)
		accepted := sentProposal()
		accepted.Status = entities.ProposalStatusAccepted
		f.accounts.EXPECT().GetClientByUserID(gomock.Any(), "user-c1").Return(entities.Client{ID: "client-1"}, nil)
		gomock.InOrder(
			f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(sentProposal(), nil),
			f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(accepted, nil),
		)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(quoted, nil)
		f.tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).Return(interfaces.ErrConditionFailed)

		_, err := f.uc.AcceptProposal(context.Background(), clientUser, "prop-1")
		if !errors.Is(err, ErrAlreadyAccepted) {
			t.Fatalf("expected ErrAlreadyAccepted, got %v", err)
		}
	})
}

func TestProposalUseCase_RegenerateDocument(t *testing.T) {
	t.Run("sent proposal", func(t *testing.T) {
		f := newProposalFixture(t)
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(sentProposal(), nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)

		_, err := f.uc.RegenerateDocument(context.Background(), agent7, "prop-1")
		if !errors.Is(err, ErrProposalNotDraft) {
			t.Fatalf("expected ErrProposalNotDraft, got %v", err)
		}
	})

	t.Run("generator failure", func(t *testing.T) {
		f := newProposalFixture(t)
		p := sentProposal()
		p.Status = entities.ProposalStatusDraft
		p.PDFPath = entities.ProposalDocumentPending
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)
		f.proposals.EXPECT().ListLineItems(gomock.Any(), "prop-1").Return([]entities.ProposalLineItem{{Description: "Design", Price: 500}}, nil)
		f.accounts.EXPECT().GetClientByID(gomock.Any(), "client-1").Return(entities.Client{}, errors.New("db"))
		f.docs.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", context.DeadlineExceeded)

		_, err := f.uc.RegenerateDocument(context.Background(), agent7, "prop-1")
		if !errors.Is(err, ErrDocumentGenerationFailed) || !errors.Is(err, ErrDocumentNotReady) {
			t.Fatalf("expected ErrDocumentGenerationFailed, got %v", err)
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected cause to be kept, got %v", err)
		}
	})

	t.Run("sent while rendering", func(t *testing.T) {
		f := newProposalFixture(t)
		p := sentProposal()
		p.Status = entities.ProposalStatusDraft
		p.PDFPath = entities.ProposalDocumentPending
		gomock.InOrder(
			f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil),
			f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(sentProposal(), nil),
		)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)
		f.proposals.EXPECT().ListLineItems(gomock.Any(), "prop-1").Return([]entities.ProposalLineItem{{Description: "Design", Price: 500}}, nil)
		f.accounts.EXPECT().GetClientByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1"}, nil)
		f.docs.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("/docs/new.pdf", nil)
		f.proposals.EXPECT().UpdateDocument(gomock.Any(), "prop-1", "/docs/new.pdf").Return(entities.Proposal{}, nil)

		_, err := f.uc.RegenerateDocument(context.Background(), agent7, "prop-1")
		if !errors.Is(err, ErrProposalNotDraft) {
			t.Fatalf("expected ErrProposalNotDraft, got %v", err)
		}
		if errors.Is(err, ErrDocumentNotReady) {
			t.Fatalf("expected no document error kind, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newProposalFixture(t)
		p := sentProposal()
		p.Status = entities.ProposalStatusDraft
		p.PDFPath = entities.ProposalDocumentPending
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(p, nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)
		f.proposals.EXPECT().ListLineItems(gomock.Any(), "prop-1").Return([]entities.ProposalLineItem{{Description: "Design", Price: 500}}, nil)
		f.accounts.EXPECT().GetClientByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1"}, nil)
		f.docs.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("/docs/new.pdf", nil)
		f.proposals.EXPECT().UpdateDocument(gomock.Any(), "prop-1", "/docs/new.pdf").Return(entities.Proposal{ID: "prop-1", PDFPath: "/docs/new.pdf"}, nil)

		res, err := f.uc.RegenerateDocument(context.Background(), adminUser, "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.DocumentReady() || len(res.LineItems) != 1 {
			t.Fatalf("expected ready document with items, got %+v", res)
		}
	})
}

func TestProposalUseCase_GetProposal(t *testing.T) {
	t.Run("client of another profile", func(t *testing.T) {
		f := newProposalFixture(t)
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(sentProposal(), nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)
		f.accounts.EXPECT().GetClientByUserID(gomock.Any(), "user-c1").Return(entities.Client{ID: "client-9"}, nil)

		_, err := f.uc.GetProposal(context.Background(), clientUser, "prop-1")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("owning client gets items", func(t *testing.T) {
		f := newProposalFixture(t)
		f.proposals.EXPECT().GetByID(gomock.Any(), "prop-1").Return(sentProposal(), nil)
		f.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)
		f.accounts.EXPECT().GetClientByUserID(gomock.Any(), "user-c1").Return(entities.Client{ID: "client-1"}, nil)
		f.proposals.EXPECT().ListLineItems(gomock.Any(), "prop-1").Return([]entities.ProposalLineItem{{ID: "i1"}, {ID: "i2"}}, nil)

		p, err := f.uc.GetProposal(context.Background(), clientUser, "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p.LineItems) != 2 {
			t.Fatalf("expected 2 items, got %d", len(p.LineItems))
		}
	})
}
