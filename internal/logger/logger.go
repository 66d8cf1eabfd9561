// Package logger configures the application's structured logging.
//
// It uses zerolog: a human-friendly console writer during development,
// plain JSON everywhere else. Request-scoped child loggers are derived
// from the base logger by the middleware package.
package logger

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/pademacena/base-api/internal/config"
)

// serviceName tags every log line so aggregated logs from multiple
// services stay distinguishable.
const serviceName = "base-api"

// New builds the application's base logger from config.
//
// Development gets the console writer (colored, human-readable);
// any other environment writes JSON to stderr for log shippers.
func New(cfg *config.Config) zerolog.Logger {
	var logger zerolog.Logger
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.With().
		Timestamp().
		Str("service", serviceName).
		Str("env", cfg.Primary.Env).
		Logger()
}
