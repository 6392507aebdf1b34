package routes

import (
	"agency_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing   = "/ping"
	PathHealth = "/health"
)

func addPingRoutes(rg *gin.RouterGroup, h *handlers.HealthHandler) {
	rg.GET(PathPing, h.Ping)
	rg.GET(PathHealth, h.Health)
}
