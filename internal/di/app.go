package di

import (
	"project-registration-server/internal/repository"
	"project-registration-server/internal/router"
	"project-registration-server/internal/service"
)

type Application struct {
	Router       *router.Router
	Service      *service.Service
	Repositories *repository.Repositories
}

func NewApplication(r *router.Router, s *service.Service, repos *repository.Repositories) *Application {
	return &Application{
		Router:       r,
		Service:      s,
		Repositories: repos,
	}
}
