package handler

import (
	"github.com/pademacena/base-api/internal/server"
	"github.com/pademacena/base-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
//
// This keeps router setup clean: one object is passed around instead of
// many. Handlers represent the HTTP layer: parse input, validate, call
// services, and return responses.
type Handlers struct {
	Health *HealthHandler // Health serves the service health endpoint.
	Users  *UsersHandler  // Users serves the users resource.
	Docs   *DocsHandler   // Docs serves API documentation (OpenAPI spec / UI).
}

// NewHandlers constructs the handler container.
//
// Parameters:
//   - s: application container (logger/config/store)
//   - services: business layer container
//   - apiSpec: the OpenAPI document rendered during router setup
func NewHandlers(s *server.Server, services *service.Services, apiSpec []byte) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Users:  NewUsersHandler(s, services.Users),
		Docs:   NewDocsHandler(s, apiSpec),
	}
}
