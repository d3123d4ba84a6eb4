//go:build wireinject
// +build wireinject

package di

import (
	"project-registration-server/internal/handler"
	adminhandler "project-registration-server/internal/handler/admin"
	"project-registration-server/internal/repository"
	"project-registration-server/internal/router"
	"project-registration-server/internal/service"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB) (*Application, error) {
	wire.Build(
		repository.NewRepositories,
		service.NewService,
		handler.NewHandler,
		adminhandler.NewHandler,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
