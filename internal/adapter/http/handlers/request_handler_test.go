package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"agency_ops/internal/adapter/http/handlers/mocks"
	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestRequestHandler_CreateRequest(t *testing.T) {
	t.Run("missing details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := newTestRouter(clientPrincipal)
		r.POST("/v1/requests", h.CreateRequest)

		w := doJSON(r, http.MethodPost, "/v1/requests", `{"category_id":"cat-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := newTestRouter(clientPrincipal)
		r.POST("/v1/requests", h.CreateRequest)

		uc.EXPECT().CreateRequest(gomock.Any(), clientPrincipal, usecase.CreateRequestInput{CategoryID: "cat-x", Details: "Site", Priority: ""}).
			Return(entities.ServiceRequest{}, usecase.ErrUnknownCategory)

		w := doJSON(r, http.MethodPost, "/v1/requests", `{"category_id":"cat-x","details":"Site"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := newTestRouter(clientPrincipal)
		r.POST("/v1/requests", h.CreateRequest)

		uc.EXPECT().CreateRequest(gomock.Any(), clientPrincipal, usecase.CreateRequestInput{CategoryID: "cat-1", Details: "Site", Priority: "High"}).
			Return(entities.ServiceRequest{ID: "req-1", ClientID: "client-1", CategoryID: "cat-1", Details: "Site",
				Priority: entities.RequestPriorityHigh, Status: entities.RequestStatusPending}, nil)

		w := doJSON(r, http.MethodPost, "/v1/requests", `{"category_id":"cat-1","details":"Site","priority":"High"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "req-1" || body["status"] != "Pending" || body["agent_id"] != nil {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestRequestHandler_ListAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRequestUseCase(ctrl)
	h := NewRequestHandler(uc)

	r := newTestRouter(adminPrincipal)
	r.GET("/v1/requests", h.ListRequests)
	r.GET("/v1/requests/:id", h.GetRequest)

	uc.EXPECT().ListRequests(gomock.Any(), adminPrincipal, "Pending").Return([]entities.ServiceRequest{{ID: "req-1"}, {ID: "req-2"}}, nil)
	uc.EXPECT().GetRequest(gomock.Any(), adminPrincipal, "missing").Return(entities.ServiceRequest{}, usecase.ErrRequestNotFound)

	w := doJSON(r, http.MethodGet, "/v1/requests?status=Pending", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(list))
	}

	w = doJSON(r, http.MethodGet, "/v1/requests/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRequestHandler_AssignAgent(t *testing.T) {
	t.Run("missing agent id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.PATCH("/v1/requests/:id/assign", h.AssignAgent)

		w := doJSON(r, http.MethodPatch, "/v1/requests/req-1/assign", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not an agent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.PATCH("/v1/requests/:id/assign", h.AssignAgent)

		uc.EXPECT().AssignAgent(gomock.Any(), adminPrincipal, "req-1", "u-9").Return(entities.ServiceRequest{}, usecase.ErrNotAnAgent)

		w := doJSON(r, http.MethodPatch, "/v1/requests/req-1/assign", `{"agent_id":"u-9"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewRequestHandler(uc)

		r := newTestRouter(adminPrincipal)
		r.PATCH("/v1/requests/:id/assign", h.AssignAgent)

		uc.EXPECT().AssignAgent(gomock.Any(), adminPrincipal, "req-1", "7").
			Return(entities.ServiceRequest{ID: "req-1", AgentID: "7", Status: entities.RequestStatusAssigned}, nil)

		w := doJSON(r, http.MethodPatch, "/v1/requests/req-1/assign", `{"agent_id":"7"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestTimelineHandler_GetClientTimeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITimelineUseCase(ctrl)
	h := NewTimelineHandler(uc)

	r := newTestRouter(adminPrincipal)
	r.GET("/v1/requests/timeline/:clientId", h.GetClientTimeline)

	uc.EXPECT().BuildClientTimeline(gomock.Any(), adminPrincipal, "client-1").Return([]entities.TimelineEntry{
		{RequestID: "req-1", Category: entities.DefaultTimelineCategory, RequestStatus: entities.RequestStatusPending},
	}, nil)
	uc.EXPECT().BuildClientTimeline(gomock.Any(), adminPrincipal, "client-x").Return(nil, usecase.ErrClientNotFound)

	w := doJSON(r, http.MethodGet, "/v1/requests/timeline/client-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var entries []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &entries)
	if len(entries) != 1 || entries[0]["proposal"] != nil || entries[0]["project"] != nil {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/v1/requests/timeline/client-x", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
