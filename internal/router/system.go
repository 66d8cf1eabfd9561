package router

import (
	"github.com/labstack/echo/v4"

	"github.com/pademacena/base-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the
// business logic:
//  1. Health endpoint
//  2. Docs UI endpoint
//  3. The generated OpenAPI document
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by monitors/load balancers).
	r.GET("/status", h.Health.CheckHealth)

	// Docs UI endpoint.
	r.GET("/docs", h.Docs.ServeOpenAPIUI)

	// The OpenAPI document the docs UI renders.
	r.GET("/openapi.json", h.Docs.ServeOpenAPISpec)
}
