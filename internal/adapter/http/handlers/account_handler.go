package handlers

import (
	"errors"
	"net/http"

	request "agency_ops/internal/adapter/http/dto/request"
	response "agency_ops/internal/adapter/http/dto/response"
	"agency_ops/internal/usecase"
	"agency_ops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStatusPayload  = pkg.NewDomainErrorSimple(pkg.KindValidation, "status is required", http.StatusBadRequest)
	errInvalidProfilePayload = pkg.NewDomainErrorSimple(pkg.KindValidation, "Invalid client profile payload", http.StatusBadRequest)
)

// AccountHandler serves the admin user endpoints and the client's own profile.
type AccountHandler struct {
	usecase usecase.IAccountUseCase
}

func NewAccountHandler(uc usecase.IAccountUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc}
}

// ListPendingUsers godoc
// @Summary      Users waiting for admin approval
// @Tags         admin
// @Produce      json
// @Success      200  {array}  response.UserResponse
// @Security     Bearer
// @Router       /admin/users/pending [get]
func (h *AccountHandler) ListPendingUsers(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	users, err := h.usecase.ListPendingUsers(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

// UpdateUserStatus godoc
// @Summary      Approve, suspend or reject a user
// @Description  Activating a pending user sends an approval email. Delivery failures are reported in the response and do not undo the change.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "user id"
// @Param        payload  body      request.UpdateUserStatusRequest  true  "status"
// @Success      200      {object}  response.UserStatusChangeResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/users/{id}/status [patch]
func (h *AccountHandler) UpdateUserStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	change, err := h.usecase.UpdateUserStatus(c.Request.Context(), p, c.Param("id"), payload.Status)
	if err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUserStatusChange(change))
}

// ListAgents godoc
// @Summary      Agents available for assignment
// @Tags         admin
// @Produce      json
// @Success      200  {array}  response.UserResponse
// @Security     Bearer
// @Router       /admin/agents [get]
func (h *AccountHandler) ListAgents(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	agents, err := h.usecase.ListAgents(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(agents))
}

// GetMyProfile godoc
// @Summary      The caller's client profile, vault decrypted
// @Tags         clients
// @Produce      json
// @Success      200  {object}  response.ClientProfileResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /clients/me [get]
func (h *AccountHandler) GetMyProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	profile, err := h.usecase.GetMyClientProfile(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClientProfile(profile))
}

// UpdateMyProfile godoc
// @Summary      Update industry, website or technical vault
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        payload  body      request.UpdateClientProfileRequest  true  "profile"
// @Success      200      {object}  response.ClientProfileResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /clients/me [put]
func (h *AccountHandler) UpdateMyProfile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.UpdateClientProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	profile, err := h.usecase.UpdateMyClientProfile(c.Request.Context(), p, payload.ToInput())
	if err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClientProfile(profile))
}

func mapAccountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple(pkg.KindNotFound, "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientProfileNotFound):
		return pkg.NewDomainErrorSimple(pkg.KindNotFound, "Client profile not found", http.StatusNotFound)
	default:
		return mapUseCaseError(err)
	}
}
