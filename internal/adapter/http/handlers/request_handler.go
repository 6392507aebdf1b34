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
	errInvalidRequestPayload = pkg.NewDomainErrorSimple(pkg.KindValidation, "Invalid service request payload", http.StatusBadRequest)
	errInvalidAssignPayload  = pkg.NewDomainErrorSimple(pkg.KindValidation, "agent_id is required", http.StatusBadRequest)
)

// RequestHandler serves the service request endpoints.
type RequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

// CreateRequest godoc
// @Summary      Submit a service request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateServiceRequestRequest  true  "request"
// @Success      201      {object}  response.ServiceRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateRequest(c.Request.Context(), p, payload.ToInput())
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceRequest(created))
}

// ListRequests godoc
// @Summary      List the service requests visible to the caller
// @Tags         requests
// @Produce      json
// @Param        status  query     string  false  "status filter (admins only)"
// @Success      200     {array}   response.ServiceRequestResponse
// @Security     Bearer
// @Router       /requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	list, err := h.usecase.ListRequests(c.Request.Context(), p, c.Query("status"))
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequests(list))
}

// GetRequest godoc
// @Summary      Get a service request
// @Tags         requests
// @Produce      json
// @Param        id   path      string  true  "request id"
// @Success      200  {object}  response.ServiceRequestResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	req, err := h.usecase.GetRequest(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(req))
}

// AssignAgent godoc
// @Summary      Assign an agent to a service request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "request id"
// @Param        payload  body      request.AssignAgentRequest  true  "agent"
// @Success      200      {object}  response.ServiceRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests/{id}/assign [patch]
func (h *RequestHandler) AssignAgent(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.AssignAgentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssignPayload.HTTPStatus, errInvalidAssignPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.AssignAgent(c.Request.Context(), p, c.Param("id"), payload.AgentID)
	if err != nil {
		writeError(c, mapRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(req))
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple(pkg.KindNotFound, "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownCategory):
		return pkg.NewDomainErrorSimple(pkg.KindValidation, "Unknown service category", http.StatusBadRequest)
	default:
		return mapUseCaseError(err)
	}
}
