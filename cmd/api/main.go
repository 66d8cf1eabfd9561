// Command api runs the base-api HTTP server.
//
// Startup order: config, logger, application container, OpenAPI
// document, handlers, router. The server then runs until SIGINT or
// SIGTERM, after which in-flight requests are drained within the
// configured shutdown timeout.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/pademacena/base-api/internal/config"
	"github.com/pademacena/base-api/internal/handler"
	"github.com/pademacena/base-api/internal/logger"
	"github.com/pademacena/base-api/internal/middleware"
	"github.com/pademacena/base-api/internal/openapi"
	"github.com/pademacena/base-api/internal/router"
	"github.com/pademacena/base-api/internal/server"
	"github.com/pademacena/base-api/internal/service"
)

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("base-api: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "could not load config")
	}

	log := logger.New(cfg)

	srv := server.New(cfg, &log)

	// The OpenAPI document is derived from the handler types once at
	// startup and served as-is afterwards.
	apiSpec, err := openapi.BuildJSON()
	if err != nil {
		return errors.Wrap(err, "could not build openapi document")
	}

	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services, apiSpec)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(srv, handlers, middlewares)
	srv.SetupHTTPServer(e)

	// Root context cancels on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server stopped unexpectedly")
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received, draining")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "graceful shutdown failed")
	}

	log.Info().Msg("server stopped")
	return nil
}
