package usecase

import (
	"context"
	"errors"
	"testing"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase/interfaces"
	mock_interfaces "agency_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newRequestUseCaseWithMocks(t *testing.T) (*RequestUseCase, *mock_interfaces.MockIServiceRequestRepository, *mock_interfaces.MockIAccountRepository, *mock_interfaces.MockICategoryRepository) {
	ctrl := gomock.NewController(t)
	requests := mock_interfaces.NewMockIServiceRequestRepository(ctrl)
	accounts := mock_interfaces.NewMockIAccountRepository(ctrl)
	categories := mock_interfaces.NewMockICategoryRepository(ctrl)
	return NewRequestUseCase(requests, accounts, categories), requests, accounts, categories
}

func TestRequestUseCase_CreateRequest(t *testing.T) {
	t.Run("agent cannot create", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCaseWithMocks(t)
		_, err := uc.CreateRequest(context.Background(), agent7, CreateRequestInput{CategoryID: "cat-1", Details: "site"})
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCaseWithMocks(t)
		if _, err := uc.CreateRequest(context.Background(), clientUser, CreateRequestInput{CategoryID: "cat-1"}); !errors.Is(err, ErrInvalidDetails) {
			t.Fatalf("expected ErrInvalidDetails, got %v", err)
		}
		if _, err := uc.CreateRequest(context.Background(), clientUser, CreateRequestInput{CategoryID: "cat-1", Details: "x", Priority: "asap"}); !errors.Is(err, ErrInvalidPriority) {
			t.Fatalf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc, _, accounts, categories := newRequestUseCaseWithMocks(t)
		accounts.EXPECT().GetClientByUserID(gomock.Any(), "user-c1").Return(entities.Client{ID: "client-1"}, nil)
		categories.EXPECT().GetByID(gomock.Any(), "cat-x").Return(entities.ServiceCategory{}, nil)

		_, err := uc.CreateRequest(context.Background(), clientUser, CreateRequestInput{CategoryID: "cat-x", Details: "site"})
		if !errors.Is(err, ErrUnknownCategory) {
			t.Fatalf("expected ErrUnknownCategory, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, requests, accounts, categories := newRequestUseCaseWithMocks(t)
		accounts.EXPECT().GetClientByUserID(gomock.Any(), "user-c1").Return(entities.Client{ID: "client-1"}, nil)
		categories.EXPECT().GetByID(gomock.Any(), "cat-1").Return(entities.ServiceCategory{ID: "cat-1"}, nil)
		requests.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceRequest{})).DoAndReturn(
			func(_ context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error) {
				if r.ID == "" || r.ClientID != "client-1" || r.Status != entities.RequestStatusPending || r.Priority != entities.RequestPriorityMedium {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.AgentID != "" {
					t.Fatalf("new request must not have an agent")
				}
				return r, nil
			},
		)

		r, err := uc.CreateRequest(context.Background(), clientUser, CreateRequestInput{CategoryID: " cat-1 ", Details: " new site "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Details != "new site" {
			t.Fatalf("expected trimmed details, got %q", r.Details)
		}
	})
}

func TestRequestUseCase_ListRequests(t *testing.T) {
	t.Run("client without profile sees nothing", func(t *testing.T) {
		uc, _, accounts, _ := newRequestUseCaseWithMocks(t)
		accounts.EXPECT().GetClientByUserID(gomock.Any(), "user-c1").Return(entities.Client{}, nil)

		res, err := uc.ListRequests(context.Background(), clientUser, "")
		if err != nil || len(res) != 0 {
			t.Fatalf("expected empty result, got %v %v", res, err)
		}
	})

	t.Run("agent filter ignores status", func(t *testing.T) {
		uc, requests, _, _ := newRequestUseCaseWithMocks(t)
		requests.EXPECT().List(gomock.Any(), entities.ListFilter{AgentID: "7"}).Return([]entities.ServiceRequest{{ID: "req-1"}}, nil)

		res, err := uc.ListRequests(context.Background(), agent7, "quoted")
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result %v %v", res, err)
		}
	})

	t.Run("admin status filter", func(t *testing.T) {
		uc, requests, _, _ := newRequestUseCaseWithMocks(t)
		requests.EXPECT().List(gomock.Any(), entities.ListFilter{Status: "Quoted"}).Return(nil, nil)

		if _, err := uc.ListRequests(context.Background(), adminUser, "quoted"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCaseWithMocks(t)
		if _, err := uc.ListRequests(context.Background(), adminUser, "archived"); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestRequestUseCase_GetRequest(t *testing.T) {
	uc, requests, _, _ := newRequestUseCaseWithMocks(t)
	requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil).Times(2)

	if _, err := uc.GetRequest(context.Background(), otherAgent, "req-1"); !errors.Is(err, ErrNotVisible) {
		t.Fatalf("expected ErrNotVisible, got %v", err)
	}
	if _, err := uc.GetRequest(context.Background(), agent7, "req-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequestUseCase_AssignAgent(t *testing.T) {
	agentUser := entities.User{ID: "7", Role: entities.RoleAgent}

	t.Run("admin only", func(t *testing.T) {
		uc, _, _, _ := newRequestUseCaseWithMocks(t)
		if _, err := uc.AssignAgent(context.Background(), agent7, "req-1", "7"); !errors.Is(err, ErrRoleNotAllowed) {
			t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
		}
	})

	t.Run("target is not an agent", func(t *testing.T) {
		uc, _, accounts, _ := newRequestUseCaseWithMocks(t)
		accounts.EXPECT().GetUserByID(gomock.Any(), "user-c1").Return(entities.User{ID: "user-c1", Role: entities.RoleClient}, nil)

		if _, err := uc.AssignAgent(context.Background(), adminUser, "req-1", "user-c1"); !errors.Is(err, ErrNotAnAgent) {
			t.Fatalf("expected ErrNotAnAgent, got %v", err)
		}
	})

	cases := []struct {
		name     string
		current  entities.RequestStatus
		expected entities.RequestStatus
	}{
		{name: "pending becomes assigned", current: entities.RequestStatusPending, expected: entities.RequestStatusAssigned},
		{name: "quoted stays quoted", current: entities.RequestStatusQuoted, expected: entities.RequestStatusQuoted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, requests, accounts, _ := newRequestUseCaseWithMocks(t)
			accounts.EXPECT().GetUserByID(gomock.Any(), "7").Return(agentUser, nil)
			requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", AgentID: "3", Status: tc.current}, nil)
			requests.EXPECT().AssignAgent(gomock.Any(), "req-1", "7", tc.expected, tc.current).
				Return(entities.ServiceRequest{ID: "req-1", AgentID: "7", Status: tc.expected}, nil)

			r, err := uc.AssignAgent(context.Background(), adminUser, "req-1", "7")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Status != tc.expected || r.AgentID != "7" {
				t.Fatalf("unexpected request: %+v", r)
			}
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		uc, requests, accounts, _ := newRequestUseCaseWithMocks(t)
		accounts.EXPECT().GetUserByID(gomock.Any(), "7").Return(agentUser, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(assignedRequest(), nil)

		if _, err := uc.AssignAgent(context.Background(), adminUser, "req-1", "7"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("converted", func(t *testing.T) {
		uc, requests, accounts, _ := newRequestUseCaseWithMocks(t)
		accounts.EXPECT().GetUserByID(gomock.Any(), "7").Return(agentUser, nil)
		requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusConverted}, nil)

		if _, err := uc.AssignAgent(context.Background(), adminUser, "req-1", "7"); !errors.Is(err, ErrAlreadyAccepted) {
			t.Fatalf("expected ErrAlreadyAccepted, got %v", err)
		}
	})

	t.Run("concurrent change", func(t *testing.T) {
		uc, requests, accounts, _ := newRequestUseCaseWithMocks(t)
		accounts.EXPECT().GetUserByID(gomock.Any(), "7").Return(agentUser, nil)
		gomock.InOrder(
			requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusPending}, nil),
			requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusAssigned, AgentID: "9"}, nil),
		)
		requests.EXPECT().AssignAgent(gomock.Any(), "req-1", "7", entities.RequestStatusAssigned, entities.RequestStatusPending).
			Return(entities.ServiceRequest{}, interfaces.ErrConditionFailed)

		_, err := uc.AssignAgent(context.Background(), adminUser, "req-1", "7")
		if !errors.Is(err, ErrTransactionFailed) || !errors.Is(err, interfaces.ErrConditionFailed) {
			t.Fatalf("expected ErrTransactionFailed, got %v", err)
		}
	})
}
