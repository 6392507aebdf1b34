package handlers

import (
	"errors"
	"net/http"

	"agency_ops/internal/adapter/http/middleware"
	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase"
	"agency_ops/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errMissingPrincipal = pkg.NewDomainErrorSimple(pkg.KindUnauthorized, "Missing or invalid access token", http.StatusUnauthorized)

// principal returns the authenticated caller, writing a 401 when there is none.
func principal(c *gin.Context) (entities.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(c)
	if !ok {
		c.JSON(errMissingPrincipal.HTTPStatus, errMissingPrincipal.ToHTTPError())
		return entities.Principal{}, false
	}
	return p, true
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error("[http][handler] request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("kind", appErr.Code),
			zap.Error(appErr.Err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapUseCaseError translates an error kind into its HTTP form. Client-facing kinds
// carry the domain message; server-side kinds hide the cause.
func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple(pkg.KindValidation, err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple(pkg.KindNotFound, err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple(pkg.KindForbidden, err.Error(), http.StatusForbidden)
	case errors.Is(err, usecase.ErrDocumentNotReady):
		return pkg.NewDomainError(pkg.KindDocumentNotReady, "Proposal document is not ready", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyAccepted):
		return pkg.NewDomainErrorSimple(pkg.KindAlreadyAccepted, err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrNotificationFailed):
		return pkg.NewDomainError(pkg.KindNotificationFailed, "Notification could not be delivered", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrTransactionFailed):
		return pkg.NewDomainError(pkg.KindTransactionFailed, "The operation could not be committed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError(pkg.KindInternal, "An internal error occurred", err, http.StatusInternalServerError)
	}
}
