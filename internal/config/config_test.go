package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BASEAPI_PRIMARY.ENV", "production")
	t.Setenv("BASEAPI_SERVER.PORT", "8080")
	t.Setenv("BASEAPI_SERVER.CORS_ALLOWED_ORIGINS", "https://app.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.CORSAllowedOrigins)

	// Untouched keys keep their defaults.
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
}

func TestLoad_RejectsUnknownEnvName(t *testing.T) {
	t.Setenv("BASEAPI_PRIMARY.ENV", "sandbox")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_IgnoresUnprefixedVariables(t *testing.T) {
	t.Setenv("SERVER.PORT", "9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
}
