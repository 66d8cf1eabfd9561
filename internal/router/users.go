package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pademacena/base-api/internal/handler"
)

// registerUserRoutes maps the users resource under /api/users.
//
// All endpoints go through the typed handler pipeline, which binds and
// validates the request type before the handler method runs. The same
// request/response types feed the generated OpenAPI document.
func registerUserRoutes(r *echo.Echo, h *handler.Handlers) {
	users := r.Group("/api/users")

	users.GET("", handler.Handle(
		h.Users.Handler,
		h.Users.ListUsers,
		http.StatusOK,
		func() *handler.ListUsersRequest { return &handler.ListUsersRequest{} },
	))

	users.POST("", handler.Handle(
		h.Users.Handler,
		h.Users.CreateUser,
		http.StatusCreated,
		func() *handler.CreateUserRequest { return &handler.CreateUserRequest{} },
	))

	users.GET("/:id", handler.Handle(
		h.Users.Handler,
		h.Users.GetUser,
		http.StatusOK,
		func() *handler.GetUserRequest { return &handler.GetUserRequest{} },
	))
}
