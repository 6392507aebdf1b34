package routes

import (
	"agency_ops/internal/adapter/http/handlers"
	"agency_ops/internal/adapter/http/middleware"
	"agency_ops/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAdmin   = "/admin"
	PathClients = "/clients"
)

func addAdminRoutes(rg *gin.RouterGroup, accountHandler *handlers.AccountHandler, categoryHandler *handlers.CategoryHandler) {
	adminOnly := middleware.RequireRoles(entities.RoleAdmin)

	admin := rg.Group(PathAdmin)
	{
		admin.GET("/users/pending", adminOnly, accountHandler.ListPendingUsers)
		admin.PATCH("/users/:id/status", adminOnly, accountHandler.UpdateUserStatus)
		admin.GET("/agents", adminOnly, accountHandler.ListAgents)

		// Categories are readable by every role; the request form lists them.
		admin.POST("/categories", adminOnly, categoryHandler.CreateCategory)
		admin.GET("/categories", categoryHandler.ListCategories)
	}
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.AccountHandler) {
	clients := rg.Group(PathClients, middleware.RequireRoles(entities.RoleClient))
	{
		clients.GET("/me", h.GetMyProfile)
		clients.PUT("/me", h.UpdateMyProfile)
	}
}
