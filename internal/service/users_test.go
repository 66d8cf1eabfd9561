package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pademacena/base-api/internal/config"
	"github.com/pademacena/base-api/internal/errs"
	"github.com/pademacena/base-api/internal/server"
)

func newTestServices(t *testing.T) *Services {
	t.Helper()

	log := zerolog.Nop()
	srv := server.New(config.Default(), &log)
	return NewServices(srv)
}

func TestUserService_CreateUser(t *testing.T) {
	svc := newTestServices(t)

	user := svc.Users.CreateUser("Ada Lovelace", "ada@example.com")

	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	// IDs are minted server-side and must be valid UUIDs.
	_, err := uuid.Parse(user.ID)
	assert.NoError(t, err)
}

func TestUserService_ListUsers_InsertionOrder(t *testing.T) {
	svc := newTestServices(t)

	assert.Empty(t, svc.Users.ListUsers())

	first := svc.Users.CreateUser("Ada", "ada@example.com")
	second := svc.Users.CreateUser("Grace", "grace@example.com")

	users := svc.Users.ListUsers()
	require.Len(t, users, 2)
	assert.Equal(t, first.ID, users[0].ID)
	assert.Equal(t, second.ID, users[1].ID)
}

func TestUserService_GetUser(t *testing.T) {
	svc := newTestServices(t)
	created := svc.Users.CreateUser("Ada", "ada@example.com")

	got, err := svc.Users.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc := newTestServices(t)

	_, err := svc.Users.GetUser(uuid.New().String())
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, 404, httpErr.Status)
	assert.Equal(t, "NOT_FOUND", httpErr.Code)
}
