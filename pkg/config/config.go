package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server        ServerConfig
	Logging       LoggingConfig
	Security      SecurityConfig
	Observability ObservabilityConfig
	OpenAPI       OpenAPIConfig
	I18n          I18nConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8081"`
	Env             string        `env:"APP_ENV" envDefault:"development"`
	BasePath        string        `env:"BASE_PATH" envDefault:"/personagens"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Version         string        `env:"APP_VERSION" envDefault:"dev"`
}

type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type SecurityConfig struct {
	RateLimit      float64  `env:"RATE_LIMIT" envDefault:"5"`
	RateLimitBurst int      `env:"RATE_LIMIT_BURST" envDefault:"10"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	MaxBodySize    int64    `env:"MAX_BODY_SIZE" envDefault:"1048576"`
}

type ObservabilityConfig struct {
	ServiceName    string `env:"SERVICE_NAME" envDefault:"rpg-api"`
	TracingEnabled bool   `env:"TRACING_ENABLED" envDefault:"false"`
	MetricsPath    string `env:"METRICS_PATH" envDefault:"/metrics"`
}

type OpenAPIConfig struct {
	ValidationEnabled bool `env:"OPENAPI_VALIDATION" envDefault:"true"`
	// SchemaPath overrides the embedded schema when set
	SchemaPath string `env:"OPENAPI_SCHEMA_PATH"`
}

type I18nConfig struct {
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"pt-BR"`
}

var (
	instance *Config
	once     sync.Once
)

// Load parses configuration from the environment after loading an optional .env file
func Load() (*Config, error) {
	// A missing .env is fine; the process environment still applies
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Get returns the process-wide configuration, loading it on first use
func Get() *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
		}
		instance = cfg
	})
	return instance
}

// Default returns the configuration with every default applied and no environment lookups
func Default() *Config {
	cfg := &Config{}
	// Parsing an empty environment only applies envDefault tags
	_ = env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// UseJSONLogs reports whether logs should be emitted as JSON
func (c *Config) UseJSONLogs() bool {
	return c.Logging.Format != "text"
}
