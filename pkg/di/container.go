package di

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"rpg-api/backend/internal/repository"
	"rpg-api/backend/internal/service"
	"rpg-api/backend/pkg/config"
	"rpg-api/backend/pkg/health"
	"rpg-api/backend/pkg/i18n"
	"rpg-api/backend/pkg/logger"
	"rpg-api/backend/pkg/middleware"
	"rpg-api/backend/pkg/observability"
	"rpg-api/backend/pkg/validator"

	"golang.org/x/time/rate"
)

const healthCheckPeriod = 30 * time.Second

// Container holds all the dependencies for the application
type Container struct {
	Config           *config.Config
	Logger           *logger.Logger
	Repository       repository.CharacterRepository
	CharacterService *service.CharacterService
	Localizer        *i18n.Localizer
	Health           *health.Checker
	Metrics          *observability.Metrics
	Validator        *validator.OpenAPIValidator
	RateLimiter      *middleware.RateLimiter

	shutdown []observability.ShutdownFunc
}

// New wires the catalog. Observability is installed first because the service
// binds its tracer and counters to the global otel providers on creation.
func New(cfg *config.Config, log *logger.Logger) (*Container, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.New(logger.DefaultConfig())
	}

	c := &Container{
		Config: cfg,
		Logger: log,
	}

	if cfg.Observability.TracingEnabled {
		shutdownTracing, err := observability.SetupTracing(cfg.Observability.ServiceName, os.Stdout)
		if err != nil {
			return nil, fmt.Errorf("failed to set up tracing: %w", err)
		}
		c.shutdown = append(c.shutdown, shutdownTracing)
	}

	metrics, err := observability.NewMetrics(cfg.Observability.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("failed to set up metrics: %w", err)
	}
	c.Metrics = metrics
	c.shutdown = append(c.shutdown, metrics.Shutdown)

	c.Repository = repository.NewMemoryCharacterRepository(repository.SeedCharacters())
	c.CharacterService = service.NewCharacterService(c.Repository)
	c.Localizer = i18n.NewLocalizer(cfg.I18n.DefaultLanguage)

	v, err := validator.NewOpenAPIValidator(cfg.OpenAPI.SchemaPath, cfg.Server.BasePath, c.Localizer)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI schema: %w", err)
	}
	c.Validator = v

	c.Health = health.NewChecker(log, healthCheckPeriod)
	c.Health.RegisterStoreCheck(c.Repository.Count)
	c.Metrics.RegisterCatalogSize(c.Repository.Count)

	opts := middleware.DefaultRateLimiterOptions()
	opts.Limit = rate.Limit(cfg.Security.RateLimit)
	opts.Burst = cfg.Security.RateLimitBurst
	c.RateLimiter = middleware.NewRateLimiter(log, opts)

	log.Info("Catalog initialized",
		"characters", c.Repository.Count(),
		"base_path", cfg.Server.BasePath,
		"openapi_validation", cfg.OpenAPI.ValidationEnabled,
		"tracing", cfg.Observability.TracingEnabled,
	)

	return c, nil
}

// Start launches the background health checks and rate limiter sweeps
func (c *Container) Start(ctx context.Context) {
	c.Health.Start(ctx)
	go c.RateLimiter.Run(ctx)
}

// Shutdown flushes the telemetry providers
func (c *Container) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range c.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
