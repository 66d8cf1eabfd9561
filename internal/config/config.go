// Package config manages environment variables.
//
// It reads variables from the process environment (optionally seeded
// from a `.env` file), loads them into structured Go types, and
// validates that required values are present so they can be reused
// across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config.
//   - Apply defaults so the binary runs with an empty environment.
//   - Validate required values so the app fails fast on bad config.
package config

import (
	"strings"

	"github.com/pkg/errors"

	// Side-effect import: if a `.env` file exists, godotenv loads it
	// into the process env before any env var is read.
	_ "github.com/joho/godotenv/autoload"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/pademacena/base-api/internal/validation"
)

// envPrefix is the prefix every configuration env var must carry.
// Keys are normalized by stripping the prefix and lowercasing, with
// "." as the nesting delimiter:
//
//	BASEAPI_SERVER.PORT -> server.port -> Config.Server.Port
const envPrefix = "BASEAPI_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from.
// The `validate:"..."` tags are enforced after defaults are applied,
// so a zero environment still yields a valid config.
type Config struct {
	Primary Primary      `koanf:"primary" validate:"required"`
	Server  ServerConfig `koanf:"server" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs and switch behavior (e.g. console vs JSON logging).
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development staging production"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are stored as integer seconds; the server package converts
// them to time.Duration.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// Default returns the configuration used when no env overrides exist.
//
// The CORS default is the permissive "*": this is a development
// scaffold, and the origin list is expected to be tightened per
// deployment via BASEAPI_SERVER.CORS_ALLOWED_ORIGINS.
func Default() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			ShutdownTimeout:    15,
			CORSAllowedOrigins: []string{"*"},
		},
	}
}

// Load builds the configuration: defaults first, then env overrides,
// then validation.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Load environment variables into koanf. Only vars carrying the
	// prefix are considered; the mapping func strips the prefix and
	// lowercases the remainder so "." nesting lines up with the
	// koanf struct tags.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load env variables")
	}

	// Start from defaults; Unmarshal only overrides keys that were
	// actually present in the environment.
	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal config")
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return cfg, nil
}

// IsDevelopment reports whether the app runs in the development env.
func (c *Config) IsDevelopment() bool {
	return c.Primary.Env == "development"
}
