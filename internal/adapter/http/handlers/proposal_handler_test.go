package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"agency_ops/internal/adapter/http/handlers/mocks"
	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProposalHandler_CreateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := newTestRouter(agentPrincipal)
		r.POST("/v1/proposals", h.CreateProposal)

		w := doJSON(r, http.MethodPost, "/v1/proposals", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := newTestRouter(agentPrincipal)
		r.POST("/v1/proposals", h.CreateProposal)

		w := doJSON(r, http.MethodPost, "/v1/proposals", `{"request_id":"req-1","items":[{"description":"Design"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if kind := decodeKind(t, w); kind != "VALIDATION_ERROR" {
			t.Fatalf("expected VALIDATION_ERROR, got %s", kind)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := newTestRouter(agentPrincipal)
		r.POST("/v1/proposals", h.CreateProposal)

		items := []entities.LineItemInput{{Description: "Design", Price: 500}, {Description: "Dev", Price: 1500}}
		now := time.Now().UTC()
		uc.EXPECT().CreateProposal(gomock.Any(), agentPrincipal, "req-1", items).Return(entities.Proposal{
			ID: "prop-1", RequestID: "req-1", AgentID: "7", TotalAmount: 2000,
			Status: entities.ProposalStatusDraft, PDFPath: "uploads/proposals/proposal-prop-1.pdf",
			CreatedAt: now, UpdatedAt: now,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/proposals",
			`{"request_id":"req-1","items":[{"description":"Design","price":500},{"description":"Dev","price":1500}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total_amount"] != 2000.0 || body["document_state"] != "document-ready" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("pending document is still created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc)

		r := newTestRouter(agentPrincipal)
		r.POST("/v1/proposals", h.CreateProposal)

		uc.EXPECT().CreateProposal(gomock.Any(), agentPrincipal, "req-1", gomock.Any()).Return(entities.Proposal{
			ID: "prop-1", RequestID: "req-1", Status: entities.ProposalStatusDraft, PDFPath: entities.ProposalDocumentPending,
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/proposals", `{"request_id":"req-1","items":[{"description":"Design","price":0}]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["document_state"] != "pending-document" || body["pdf_path"] != nil {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_ErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantKind string
	}{
		{"validation", usecase.ErrTooManyLineItems, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", usecase.ErrProposalNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"forbidden", usecase.ErrNotProposalOwner, http.StatusForbidden, "FORBIDDEN"},
		{"document not ready", usecase.ErrDocumentGenerationFailed, http.StatusConflict, "DOCUMENT_NOT_READY"},
		{"already accepted", usecase.ErrRequestAlreadyConverted, http.StatusConflict, "ALREADY_ACCEPTED"},
		{"notification failed", fmt.Errorf("%w: smtp timeout", usecase.ErrNotificationFailed), http.StatusBadGateway, "NOTIFICATION_FAILED"},
		{"transaction failed", fmt.Errorf("%w: %w", usecase.ErrTransactionFailed, errors.New("disk full")), http.StatusInternalServerError, "TRANSACTION_FAILED"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIProposalUseCase(ctrl)
			h := NewProposalHandler(uc)

			r := newTestRouter(agentPrincipal)
			r.POST("/v1/proposals/:id/send", h.SendProposal)

			uc.EXPECT().SendProposal(gomock.Any(), agentPrincipal, "prop-1").Return(entities.Proposal{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/proposals/prop-1/send", "")
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, w.Code)
			}
			if kind := decodeKind(t, w); kind != tc.wantKind {
				t.Fatalf("expected kind %s, got %s", tc.wantKind, kind)
			}
		})
	}
}

func TestProposalHandler_InternalErrorHidesCause(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProposalUseCase(ctrl)
	h := NewProposalHandler(uc)

	r := newTestRouter(clientPrincipal)
	r.PATCH("/v1/proposals/:id/accept", h.AcceptProposal)

	uc.EXPECT().AcceptProposal(gomock.Any(), clientPrincipal, "prop-1").
		Return(entities.Project{}, fmt.Errorf("%w: %w", usecase.ErrTransactionFailed, errors.New("secret dsn")))

	w := doJSON(r, http.MethodPatch, "/v1/proposals/prop-1/accept", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["message"] == "" || body["message"] == "secret dsn" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}

func TestProposalHandler_AcceptProposal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProposalUseCase(ctrl)
	h := NewProposalHandler(uc)

	r := newTestRouter(clientPrincipal)
	r.PATCH("/v1/proposals/:id/accept", h.AcceptProposal)

	uc.EXPECT().AcceptProposal(gomock.Any(), clientPrincipal, "prop-1").Return(entities.Project{
		ID: "proj-1", RequestID: "req-1", ClientID: "client-1", AgentID: "7", GlobalStatus: entities.ProjectStatusPending,
	}, nil)

	w := doJSON(r, http.MethodPatch, "/v1/proposals/prop-1/accept", "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["id"] != "proj-1" || body["global_status"] != "Pending" || body["progress_percent"] != 0.0 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestProposalHandler_MissingPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProposalUseCase(ctrl)
	h := NewProposalHandler(uc)

	r := gin.New()
	r.GET("/v1/proposals/:id", h.GetProposal)

	w := doJSON(r, http.MethodGet, "/v1/proposals/prop-1", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
