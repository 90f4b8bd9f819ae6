package router

import (
	"net/http"

	"rpg-api/backend/internal/api"
	"rpg-api/backend/pkg/config"
	"rpg-api/backend/pkg/di"
	"rpg-api/backend/pkg/errors"
	"rpg-api/backend/pkg/logger"
	"rpg-api/backend/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// Router is the main router for the application
type Router struct {
	Engine    *gin.Engine
	Container *di.Container
	Logger    *logger.Logger
	Config    *config.Config
}

// New creates a new router with the given container
func New(container *di.Container) *Router {
	logger.SetGlobal(container.Logger)
	cfg := container.Config

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	// ASP.NET-style clients address routes case-insensitively
	engine.RedirectFixedPath = true

	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(logger.Middleware(container.Logger))
	engine.Use(container.Metrics.Middleware())
	engine.Use(errors.ErrorHandler())
	engine.Use(errors.RecoveryWithLogger())
	engine.Use(middleware.CORS(cfg.Security.AllowedOrigins))
	engine.Use(middleware.BodyLimit(cfg.Security.MaxBodySize))
	engine.Use(container.RateLimiter.Middleware())

	return &Router{
		Engine:    engine,
		Container: container,
		Logger:    container.Logger,
		Config:    cfg,
	}
}

// SetupRoutes registers all application routes
func (r *Router) SetupRoutes() {
	r.setupHealthRoutes()
	r.setupDocsRoutes()

	r.Engine.GET(r.Config.Observability.MetricsPath, gin.WrapH(r.Container.Metrics.Handler()))

	characterHandler := api.NewCharacterHandler(r.Container.CharacterService, r.Container.Localizer)

	catalog := r.Engine.Group(r.Config.Server.BasePath)
	if r.Config.OpenAPI.ValidationEnabled {
		catalog.Use(r.Container.Validator.Middleware())
	}
	characterHandler.RegisterRoutes(catalog)

	r.Engine.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		appErr := errors.NewNotFoundError(errors.CodeRouteNotFound, "route not found").
			WithDetails(gin.H{"path": path})
		appErr.Message = r.Container.Localizer.Localize(c, errors.CodeRouteNotFound, path)
		_ = c.Error(appErr)
	})
}

func (r *Router) setupDocsRoutes() {
	r.Engine.GET("/api/docs/openapi.json", func(c *gin.Context) {
		doc, err := r.Container.Validator.Document()
		if err != nil {
			_ = c.Error(errors.NewInternalServerError(errors.CodeInternal, "failed to render OpenAPI document"))
			return
		}
		c.Data(http.StatusOK, "application/json", doc)
	})
}

