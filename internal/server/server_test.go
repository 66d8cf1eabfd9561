package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pademacena/base-api/internal/config"
)

func newTestServer() *Server {
	log := zerolog.Nop()
	return New(config.Default(), &log)
}

func TestStart_RequiresSetup(t *testing.T) {
	s := newTestServer()
	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestSetupHTTPServer_AppliesConfig(t *testing.T) {
	s := newTestServer()
	s.SetupHTTPServer(http.NewServeMux())

	require.NotNil(t, s.httpServer)
	assert.Equal(t, ":"+s.Config.Server.Port, s.httpServer.Addr)
	assert.Equal(t, time.Duration(s.Config.Server.ReadTimeout)*time.Second, s.httpServer.ReadTimeout)
	assert.Equal(t, time.Duration(s.Config.Server.WriteTimeout)*time.Second, s.httpServer.WriteTimeout)
	assert.Equal(t, time.Duration(s.Config.Server.IdleTimeout)*time.Second, s.httpServer.IdleTimeout)
}

func TestShutdown_WithoutSetupIsNoop(t *testing.T) {
	s := newTestServer()
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestNew_SharesOneStore(t *testing.T) {
	s := newTestServer()
	require.NotNil(t, s.Users)
	assert.Equal(t, 0, s.Users.Len())
}
