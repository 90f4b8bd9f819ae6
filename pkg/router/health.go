package router

import (
	"rpg-api/backend/internal/api"
)

// setupHealthRoutes registers health check endpoints
func (r *Router) setupHealthRoutes() {
	handler := api.NewHealthHandler(r.Container.Health, r.Config.Server.Version)

	// Register both health endpoint paths for compatibility
	handler.RegisterRoutes(r.Engine)
	handler.RegisterRoutes(r.Engine.Group("/api"))
}
