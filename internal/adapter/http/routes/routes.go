package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "agency_ops/docs" // generated by swag init
	"agency_ops/internal/adapter/http/handlers"
	"agency_ops/internal/adapter/http/middleware"
	"agency_ops/internal/adapter/persistence/repository"
	"agency_ops/internal/config"
	"agency_ops/internal/usecase"
	"agency_ops/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every handler the router mounts.
type Handlers struct {
	Requests   *handlers.RequestHandler
	Timeline   *handlers.TimelineHandler
	Proposals  *handlers.ProposalHandler
	Projects   *handlers.ProjectHandler
	Accounts   *handlers.AccountHandler
	Categories *handlers.CategoryHandler
	Health     *handlers.HealthHandler
}

// Gateways are the external collaborators of the use cases.
type Gateways struct {
	Documents interfaces.IDocumentGenerator
	Notifier  interfaces.INotificationGateway
	Vault     interfaces.IVaultCipher
}

// NewHandlers wires the use cases over one store backend.
func NewHandlers(cfg config.Config, repos repository.Repositories, gw Gateways) Handlers {
	timeout := cfg.ExternalCallTimeout

	requestUseCase := usecase.NewRequestUseCase(repos.Requests, repos.Accounts, repos.Categories)
	proposalUseCase := usecase.NewProposalUseCase(repos.Requests, repos.Proposals, repos.Accounts, repos.Tx, gw.Documents, gw.Notifier, timeout)
	projectUseCase := usecase.NewProjectUseCase(repos.Projects, repos.Accounts, gw.Vault)
	timelineUseCase := usecase.NewTimelineUseCase(repos.Requests, repos.Proposals, repos.Projects, repos.Accounts, repos.Categories)
	accountUseCase := usecase.NewAccountUseCase(repos.Accounts, gw.Notifier, gw.Vault, timeout)
	categoryUseCase := usecase.NewCategoryUseCase(repos.Categories)

	return Handlers{
		Requests:   handlers.NewRequestHandler(requestUseCase),
		Timeline:   handlers.NewTimelineHandler(timelineUseCase),
		Proposals:  handlers.NewProposalHandler(proposalUseCase),
		Projects:   handlers.NewProjectHandler(projectUseCase),
		Accounts:   handlers.NewAccountHandler(accountUseCase),
		Categories: handlers.NewCategoryHandler(categoryUseCase),
		Health:     handlers.NewHealthHandler(repos.Health, cfg.StoreDriver),
	}
}

// NewRouter builds the engine: public probes and swagger, everything else behind
// the bearer token check.
func NewRouter(h Handlers, auth *middleware.Authenticator) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1, h.Health)

	api := v1.Group("", auth.Authenticate())
	addRequestRoutes(api, h.Requests, h.Timeline)
	addProposalRoutes(api, h.Proposals)
	addProjectRoutes(api, h.Projects)
	addAdminRoutes(api, h.Accounts, h.Categories)
	addClientRoutes(api, h.Accounts)

	return router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg config.Config, h Handlers) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(h, middleware.NewAuthenticator(cfg.JWTSecret)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("[http][server] listening", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.L().Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zap.L().Error("[http][server] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.FullPath()))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
