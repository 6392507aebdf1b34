package handlers

import (
	"context"
	"errors"
	"net/http"

	request "agency_ops/internal/adapter/http/dto/request"
	response "agency_ops/internal/adapter/http/dto/response"
	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase"
	"agency_ops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple(pkg.KindValidation, "Invalid proposal payload: request_id and a price per item are required", http.StatusBadRequest)
)

// ProposalHandler exposes the proposal lifecycle: create, document retry, send and
// accept. Every state change goes through the use case transaction.
type ProposalHandler struct {
	usecase usecase.IProposalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc}
}

// CreateProposal godoc
// @Summary      Create (or replace) the proposal of a service request
// @Description  Replaces any previous proposal of the request. The document is generated after the commit; on failure the proposal stays in pending-document state.
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateProposalRequest  true  "proposal"
// @Success      201      {object}  response.ProposalResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      403      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.CreateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	proposal, err := h.usecase.CreateProposal(c.Request.Context(), p, payload.ResolveRequestID(), payload.ToLineItems())
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

// GetProposal godoc
// @Summary      Get a proposal with its line items
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "proposal id"
// @Success      200  {object}  response.ProposalResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	h.withProposal(c, h.usecase.GetProposal, http.StatusOK)
}

// RegenerateDocument godoc
// @Summary      Retry document generation for a draft proposal
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "proposal id"
// @Success      200  {object}  response.ProposalResponse
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /proposals/{id}/document [post]
func (h *ProposalHandler) RegenerateDocument(c *gin.Context) {
	h.withProposal(c, h.usecase.RegenerateDocument, http.StatusOK)
}

// SendProposal godoc
// @Summary      Email the proposal to the client and mark it Sent
// @Description  The proposal and its request are only updated after the email was delivered.
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "proposal id"
// @Success      200  {object}  response.ProposalResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /proposals/{id}/send [post]
func (h *ProposalHandler) SendProposal(c *gin.Context) {
	h.withProposal(c, h.usecase.SendProposal, http.StatusOK)
}

// AcceptProposal godoc
// @Summary      Accept a sent proposal and create the project
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "proposal id"
// @Success      201  {object}  response.ProjectResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /proposals/{id}/accept [patch]
func (h *ProposalHandler) AcceptProposal(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	project, err := h.usecase.AcceptProposal(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(project))
}

func (h *ProposalHandler) withProposal(
	c *gin.Context,
	action func(ctx context.Context, principal entities.Principal, id string) (entities.Proposal, error),
	status int,
) {
	p, ok := principal(c)
	if !ok {
		return
	}
	proposal, err := action(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, mapProposalError(err))
		return
	}
	c.JSON(status, response.FromProposal(proposal))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple(pkg.KindNotFound, "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple(pkg.KindNotFound, "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestAlreadyConverted):
		return pkg.NewDomainErrorSimple(pkg.KindAlreadyAccepted, "Proposal already accepted for this request", http.StatusConflict)
	default:
		return mapUseCaseError(err)
	}
}
