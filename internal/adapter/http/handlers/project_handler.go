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
	errInvalidProjectPayload = pkg.NewDomainErrorSimple(pkg.KindValidation, "Invalid project update payload", http.StatusBadRequest)
	errInvalidNotePayload    = pkg.NewDomainErrorSimple(pkg.KindValidation, "content is required", http.StatusBadRequest)
)

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// ListProjects godoc
// @Summary      List the projects visible to the caller
// @Tags         projects
// @Produce      json
// @Param        status  query     string  false  "global status filter"
// @Success      200     {array}   response.ProjectResponse
// @Security     Bearer
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	list, err := h.usecase.ListProjects(c.Request.Context(), p, c.Query("status"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(list))
}

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "project id"
// @Success      200  {object}  response.ProjectResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	project, err := h.usecase.GetProject(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

// GetProjectVault godoc
// @Summary      Read the decrypted technical vault of the project's client
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "project id"
// @Success      200  {object}  response.ProjectVaultResponse
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id}/vault [get]
func (h *ProjectHandler) GetProjectVault(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	vault, err := h.usecase.GetProjectVault(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjectVault(vault))
}

// UpdateProjectStatus godoc
// @Summary      Update status, progress or estimated completion date
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "project id"
// @Param        payload  body      request.UpdateProjectRequest  true  "partial update"
// @Success      200      {object}  response.ProjectResponse
// @Failure      400      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /projects/{id} [patch]
func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.UpdateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	project, err := h.usecase.UpdateProjectStatus(c.Request.Context(), p, c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

// AddNote godoc
// @Summary      Append a note to a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "project id"
// @Param        payload  body      request.AddNoteRequest  true  "note"
// @Success      201      {object}  response.ProjectNoteResponse
// @Security     Bearer
// @Router       /projects/{id}/notes [post]
func (h *ProjectHandler) AddNote(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.AddNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNotePayload.HTTPStatus, errInvalidNotePayload.ToHTTPError())
		return
	}

	note, err := h.usecase.AddNote(c.Request.Context(), p, c.Param("id"), payload.Content)
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProjectNote(note))
}

// ListNotes godoc
// @Summary      List project notes, oldest first
// @Tags         projects
// @Produce      json
// @Param        id   path     string  true  "project id"
// @Success      200  {array}  response.ProjectNoteResponse
// @Security     Bearer
// @Router       /projects/{id}/notes [get]
func (h *ProjectHandler) ListNotes(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	notes, err := h.usecase.ListNotes(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjectNotes(notes))
}

// ListAssets godoc
// @Summary      List project assets
// @Tags         projects
// @Produce      json
// @Param        id   path     string  true  "project id"
// @Success      200  {array}  response.ProjectAssetResponse
// @Security     Bearer
// @Router       /projects/{id}/assets [get]
func (h *ProjectHandler) ListAssets(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	assets, err := h.usecase.ListAssets(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjectAssets(assets))
}

func mapProjectError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrProjectNotFound) {
		return pkg.NewDomainErrorSimple(pkg.KindNotFound, "Project not found", http.StatusNotFound)
	}
	return mapUseCaseError(err)
}
