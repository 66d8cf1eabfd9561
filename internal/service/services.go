package service

import (
	"github.com/pademacena/base-api/internal/server"
)

// Services is a container that groups all business services.
//
// Router and handler wiring receive this single object instead of a
// growing list of individual services.
type Services struct {
	Users *UserService
}

// NewServices constructs the service container from the application
// container.
func NewServices(s *server.Server) *Services {
	return &Services{
		Users: NewUserService(s),
	}
}
