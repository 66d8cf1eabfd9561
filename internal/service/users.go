package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/pademacena/base-api/internal/errs"
	"github.com/pademacena/base-api/internal/server"
	"github.com/pademacena/base-api/internal/store"
)

// UserService owns the business operations on the users resource.
type UserService struct {
	server *server.Server
}

// NewUserService constructs a UserService with access to shared
// dependencies.
func NewUserService(s *server.Server) *UserService {
	return &UserService{server: s}
}

// ListUsers returns all users in insertion order.
func (s *UserService) ListUsers() []store.User {
	return s.server.Users.List()
}

// GetUser returns the user with the given ID, or a 404 HTTPError when
// no such user exists.
func (s *UserService) GetUser(id string) (store.User, error) {
	user, ok := s.server.Users.Get(id)
	if !ok {
		return store.User{}, errs.NewNotFoundError("User not found", false, nil)
	}
	return user, nil
}

// CreateUser mints an ID and timestamp for the new user and appends it
// to the store. Input is already validated by the handler layer.
func (s *UserService) CreateUser(name, email string) store.User {
	user := store.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	s.server.Users.Add(user)

	s.server.Logger.Info().
		Str("user_id", user.ID).
		Msg("user created")

	return user
}
