package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"agency_ops/internal/domain/entities"
	"agency_ops/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const principalKey = "agency_ops.principal"

var (
	errUnauthorized = pkg.NewDomainErrorSimple(pkg.KindUnauthorized, "Missing or invalid access token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple(pkg.KindForbidden, "Role not allowed for this operation", http.StatusForbidden)
)

var (
	ErrMissingToken  = errors.New("missing bearer token")
	ErrInvalidClaims = errors.New("token claims must carry id and role")
)

// Authenticator verifies HS256 bearer tokens issued by the auth service.
type Authenticator struct {
	secret []byte
	parser *jwt.Parser
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Authenticate resolves the caller from the Authorization header and stores it in
// the gin context. Requests without a valid token are aborted with 401.
func (a *Authenticator) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := a.Resolve(c.GetHeader("Authorization"))
		if err != nil {
			zap.L().Debug("[auth][middleware] rejected token", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		SetPrincipal(c, principal)
		c.Next()
	}
}

// Resolve parses an Authorization header value into a Principal.
func (a *Authenticator) Resolve(header string) (entities.Principal, error) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return entities.Principal{}, ErrMissingToken
	}

	claims := jwt.MapClaims{}
	_, err := a.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		return entities.Principal{}, err
	}
	return principalFromClaims(claims)
}

// principalFromClaims accepts the id claim as a string or a JSON number.
func principalFromClaims(claims jwt.MapClaims) (entities.Principal, error) {
	var id string
	switch v := claims["id"].(type) {
	case string:
		id = strings.TrimSpace(v)
	case float64:
		if v != float64(int64(v)) {
			return entities.Principal{}, fmt.Errorf("%w: non-integer id", ErrInvalidClaims)
		}
		id = strconv.FormatInt(int64(v), 10)
	}
	if id == "" {
		return entities.Principal{}, ErrInvalidClaims
	}

	roleClaim, _ := claims["role"].(string)
	role, ok := entities.ParseRole(roleClaim)
	if !ok {
		return entities.Principal{}, fmt.Errorf("%w: unknown role %q", ErrInvalidClaims, roleClaim)
	}
	return entities.Principal{ID: id, Role: role}, nil
}

// RequireRoles aborts with 403 unless the authenticated principal has one of roles.
func RequireRoles(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		for _, r := range roles {
			if principal.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

func SetPrincipal(c *gin.Context, p entities.Principal) {
	c.Set(principalKey, p)
}

func PrincipalFromContext(c *gin.Context) (entities.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return entities.Principal{}, false
	}
	p, ok := v.(entities.Principal)
	return p, ok
}
