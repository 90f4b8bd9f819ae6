package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "/personagens", cfg.Server.BasePath)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.UseJSONLogs())
	assert.Equal(t, 5.0, cfg.Security.RateLimit)
	assert.Equal(t, 10, cfg.Security.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.Security.AllowedOrigins)
	assert.False(t, cfg.Observability.TracingEnabled)
	assert.Equal(t, "/metrics", cfg.Observability.MetricsPath)
	assert.True(t, cfg.OpenAPI.ValidationEnabled)
	assert.Empty(t, cfg.OpenAPI.SchemaPath)
	assert.Equal(t, "pt-BR", cfg.I18n.DefaultLanguage)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("BASE_PATH", "/characters")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("RATE_LIMIT_BURST", "2")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("DEFAULT_LANGUAGE", "en")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/characters", cfg.Server.BasePath)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.False(t, cfg.UseJSONLogs())
	assert.Equal(t, 2, cfg.Security.RateLimitBurst)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Security.AllowedOrigins)
	assert.True(t, cfg.Observability.TracingEnabled)
	assert.Equal(t, "en", cfg.I18n.DefaultLanguage)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "many")

	_, err := Load()
	assert.Error(t, err)
}
