package handlers

import (
	"errors"
	"net/http"

	response "agency_ops/internal/adapter/http/dto/response"
	"agency_ops/internal/usecase"
	"agency_ops/pkg"

	"github.com/gin-gonic/gin"
)

type TimelineHandler struct {
	usecase usecase.ITimelineUseCase
}

func NewTimelineHandler(uc usecase.ITimelineUseCase) *TimelineHandler {
	return &TimelineHandler{usecase: uc}
}

// GetClientTimeline godoc
// @Summary      Client timeline: every request with its proposal and project, newest first
// @Tags         requests
// @Produce      json
// @Param        clientId  path      string  true  "client id"
// @Success      200       {array}   response.TimelineEntryResponse
// @Failure      403       {object}  pkg.HTTPError
// @Failure      404       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /requests/timeline/{clientId} [get]
func (h *TimelineHandler) GetClientTimeline(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	entries, err := h.usecase.BuildClientTimeline(c.Request.Context(), p, c.Param("clientId"))
	if err != nil {
		writeError(c, mapTimelineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTimeline(entries))
}

func mapTimelineError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrClientNotFound) {
		return pkg.NewDomainErrorSimple(pkg.KindNotFound, "Client not found", http.StatusNotFound)
	}
	return mapUseCaseError(err)
}
