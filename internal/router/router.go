// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/pademacena/base-api/internal/handler"
	"github.com/pademacena/base-api/internal/middleware"
	"github.com/pademacena/base-api/internal/server"
)

// New builds the Echo instance with the full middleware stack and all
// routes registered.
//
// Middleware order matters:
//  1. Recover — panics anywhere below become 500s.
//  2. RequestID — correlation ID must exist before logging.
//  3. ContextEnhancer — installs the request-scoped logger.
//  4. RequestLogger — one access-log line per request.
//  5. Secure, CORS — header policies.
func New(s *server.Server, h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Every error from any handler or middleware funnels through here.
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(mw.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Global.RequestLogger())
	e.Use(mw.Global.Secure())
	e.Use(mw.Global.CORS())

	registerSystemRoutes(e, h)
	registerUserRoutes(e, h)

	return e
}
