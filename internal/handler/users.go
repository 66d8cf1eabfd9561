package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pademacena/base-api/internal/server"
	"github.com/pademacena/base-api/internal/service"
	"github.com/pademacena/base-api/internal/store"
	"github.com/pademacena/base-api/internal/validation"
)

// The request/response types below are the single source of truth for
// the users API shape: the `validate` tags drive request validation and
// the jsonschema tags drive the generated OpenAPI document.

// ListUsersRequest is the (empty) payload for GET /api/users.
type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error { return nil }

// GetUserRequest is the payload for GET /api/users/:id.
type GetUserRequest struct {
	ID string `param:"id" json:"-" validate:"required,uuid"`
}

func (r *GetUserRequest) Validate() error { return validation.Struct(r) }

// CreateUserRequest is the payload for POST /api/users.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100" minLength:"2" maxLength:"100" required:"true" description:"Display name of the user." example:"Ada Lovelace"`
	Email string `json:"email" validate:"required,email" format:"email" required:"true" description:"Email address of the user." example:"ada@example.com"`
}

func (r *CreateUserRequest) Validate() error { return validation.Struct(r) }

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID        string    `json:"id" format:"uuid" description:"Server-generated user ID."`
	Name      string    `json:"name" description:"Display name of the user."`
	Email     string    `json:"email" format:"email" description:"Email address of the user."`
	CreatedAt time.Time `json:"created_at" description:"Creation timestamp (UTC)."`
}

// ListUsersResponse is the payload returned by GET /api/users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users" description:"All users in insertion order."`
	Count int            `json:"count" description:"Number of users returned."`
}

func newUserResponse(u store.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// UsersHandler exposes the users resource.
type UsersHandler struct {
	Handler

	users *service.UserService
}

// NewUsersHandler constructs a UsersHandler with access to shared
// dependencies and the user service.
func NewUsersHandler(s *server.Server, users *service.UserService) *UsersHandler {
	return &UsersHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// ListUsers returns all known users.
func (h *UsersHandler) ListUsers(c echo.Context, _ *ListUsersRequest) (ListUsersResponse, error) {
	stored := h.users.ListUsers()

	users := make([]UserResponse, 0, len(stored))
	for _, u := range stored {
		users = append(users, newUserResponse(u))
	}

	return ListUsersResponse{
		Users: users,
		Count: len(users),
	}, nil
}

// GetUser returns a single user by ID, 404 when absent.
func (h *UsersHandler) GetUser(c echo.Context, req *GetUserRequest) (UserResponse, error) {
	user, err := h.users.GetUser(req.ID)
	if err != nil {
		return UserResponse{}, err
	}
	return newUserResponse(user), nil
}

// CreateUser appends a new user to the process-local list. The payload
// is already validated by the shared handler pipeline.
func (h *UsersHandler) CreateUser(c echo.Context, req *CreateUserRequest) (UserResponse, error) {
	user := h.users.CreateUser(req.Name, req.Email)
	return newUserResponse(user), nil
}
