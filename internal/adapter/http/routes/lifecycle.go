package routes

import (
	"agency_ops/internal/adapter/http/handlers"
	"agency_ops/internal/adapter/http/middleware"
	"agency_ops/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests  = "/requests"
	PathProposals = "/proposals"
	PathProjects  = "/projects"
)

func addRequestRoutes(rg *gin.RouterGroup, requestHandler *handlers.RequestHandler, timelineHandler *handlers.TimelineHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", middleware.RequireRoles(entities.RoleClient), requestHandler.CreateRequest)
		requests.GET("", requestHandler.ListRequests)
		requests.GET("/timeline/:clientId", middleware.RequireRoles(entities.RoleAdmin), timelineHandler.GetClientTimeline)
		requests.GET("/:id", requestHandler.GetRequest)
		requests.PATCH("/:id/assign", middleware.RequireRoles(entities.RoleAdmin), requestHandler.AssignAgent)
	}
}

func addProposalRoutes(rg *gin.RouterGroup, h *handlers.ProposalHandler) {
	staff := middleware.RequireRoles(entities.RoleAgent, entities.RoleAdmin)

	proposals := rg.Group(PathProposals)
	{
		proposals.POST("", staff, h.CreateProposal)
		proposals.GET("/:id", h.GetProposal)
		proposals.POST("/:id/document", staff, h.RegenerateDocument)
		proposals.POST("/:id/send", staff, h.SendProposal)
		proposals.PATCH("/:id/accept", middleware.RequireRoles(entities.RoleClient), h.AcceptProposal)
	}
}

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", h.ListProjects)
		projects.GET("/:id", h.GetProject)
		projects.PATCH("/:id", middleware.RequireRoles(entities.RoleAgent, entities.RoleAdmin), h.UpdateProjectStatus)
		projects.GET("/:id/vault", h.GetProjectVault)
		projects.GET("/:id/notes", h.ListNotes)
		projects.POST("/:id/notes", h.AddNote)
		projects.GET("/:id/assets", h.ListAssets)
	}
}
