package handlers

import (
	"context"
	"net/http"
	"time"

	response "agency_ops/internal/adapter/http/dto/response"
	"agency_ops/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	store  interfaces.IHealthChecker
	driver string
}

func NewHealthHandler(store interfaces.IHealthChecker, driver string) *HealthHandler {
	return &HealthHandler{store: store, driver: driver}
}

// Ping godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health godoc
// @Summary  Readiness probe: pings the configured store
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.HealthResponse
// @Failure  503  {object}  response.HealthResponse
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		zap.L().Warn("[health][handler] store ping failed", zap.String("store", h.driver), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, response.HealthResponse{Status: "unavailable", Store: h.driver, Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok", Store: h.driver})
}
