package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agency_ops/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func newAuthRouter(roles ...entities.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := NewAuthenticator(testSecret)
	r := gin.New()
	handlers := []gin.HandlerFunc{auth.Authenticate()}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		p, _ := PrincipalFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "role": string(p.Role)})
	})
	r.GET("/whoami", handlers...)
	return r
}

func doWhoAmI(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()

	t.Run("missing header", func(t *testing.T) {
		w := doWhoAmI(newAuthRouter(), "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["kind"] != "UNAUTHORIZED" {
			t.Fatalf("expected UNAUTHORIZED kind, got %q", body["kind"])
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"id": "u1", "role": "Admin", "exp": exp})
		if w := doWhoAmI(newAuthRouter(), "Bearer "+tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"id": "u1", "role": "Admin", "exp": time.Now().Add(-time.Minute).Unix()})
		if w := doWhoAmI(newAuthRouter(), "Bearer "+tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unsigned token", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{"id": "u1", "role": "Admin"})
		if w := doWhoAmI(newAuthRouter(), "Bearer "+tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"id": "u1", "role": "Root", "exp": exp})
		if w := doWhoAmI(newAuthRouter(), "Bearer "+tok); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("numeric id and lowercase role", func(t *testing.T) {
		tok := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"id": 7, "role": "agent", "exp": exp})
		w := doWhoAmI(newAuthRouter(), "Bearer "+tok)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["id"] != "7" || body["role"] != "Agent" {
			t.Fatalf("unexpected principal: %v", body)
		}
	})
}

func TestRequireRoles(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	clientTok := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"id": "c1", "role": "Client", "exp": exp})
	adminTok := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"id": "a1", "role": "Admin", "exp": exp})

	r := newAuthRouter(entities.RoleAdmin)

	if w := doWhoAmI(r, "Bearer "+clientTok); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if w := doWhoAmI(r, "Bearer "+adminTok); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRequireRoles_WithoutAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", RequireRoles(entities.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
