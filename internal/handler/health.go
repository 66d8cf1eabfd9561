package handler

// HealthHandler exposes a system endpoint that external systems can use
// to verify the service is alive.
//
// Backend services expose a health endpoint so uptime monitors and load
// balancers can check whether the service is running. With no external
// dependencies here, the checks map only reports the in-memory store.

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pademacena/base-api/internal/middleware"
	"github.com/pademacena/base-api/internal/server"
)

// HealthHandler embeds the base Handler to reuse shared server
// dependencies. Not business logic, but embedding keeps handler
// patterns consistent.
type HealthHandler struct {
	Handler

	startedAt time.Time
}

// NewHealthHandler constructs a HealthHandler. The construction time is
// recorded so the endpoint can report process uptime.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler:   NewHandler(s),
		startedAt: time.Now().UTC(),
	}
}

// CheckHealth returns system health status.
//
// Response includes:
//   - overall status
//   - timestamp (UTC) and uptime
//   - environment (from config)
//   - checks map (the in-memory user store and its size)
//
// The store cannot fail, so this always returns 200; the shape still
// carries a status field and checks map so monitors can treat it
// uniformly with services that do have failing dependencies.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"uptime":      time.Since(h.startedAt).String(),
		"environment": h.server.Config.Primary.Env,
		"checks": map[string]any{
			"store": map[string]any{
				"status": "healthy",
				"users":  h.server.Users.Len(),
			},
		},
	}

	logger.Debug().Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
