package api

import (
	"net/http"
	"time"

	"rpg-api/backend/pkg/health"

	"github.com/gin-gonic/gin"
)

// HealthHandler exposes the component health gathered by a health.Checker
type HealthHandler struct {
	checker *health.Checker
	version string
}

// HealthResponse represents the health check response structure
type HealthResponse struct {
	Status     string                       `json:"status"`
	Timestamp  time.Time                    `json:"timestamp"`
	Version    string                       `json:"version"`
	Components map[string]*health.Component `json:"components"`
}

func NewHealthHandler(checker *health.Checker, version string) *HealthHandler {
	return &HealthHandler{checker: checker, version: version}
}

// Health reports 503 when a critical component is down
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:     "ok",
		Timestamp:  time.Now(),
		Version:    h.version,
		Components: h.checker.GetStatus(),
	}

	code := http.StatusOK
	if !h.checker.IsSystemHealthy() {
		response.Status = "unavailable"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, response)
}

// RegisterRoutes registers health check related routes
func (h *HealthHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/health", h.Health)
}
