package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agency_ops/internal/adapter/http/middleware"
	"agency_ops/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	adminPrincipal  = entities.Principal{ID: "admin-1", Role: entities.RoleAdmin}
	agentPrincipal  = entities.Principal{ID: "7", Role: entities.RoleAgent}
	clientPrincipal = entities.Principal{ID: "user-c1", Role: entities.RoleClient}
)

// newTestRouter returns an engine whose requests run as p.
func newTestRouter(p entities.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetPrincipal(c, p)
		c.Next()
	})
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeKind(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body["kind"]
}
