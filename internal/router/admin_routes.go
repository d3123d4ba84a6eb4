package router

import (
	adminhandler "project-registration-server/internal/handler/admin"
	"project-registration-server/internal/middleware"
	"project-registration-server/internal/repository"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, h *adminhandler.Handler, users repository.UserStore) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuth())
	adminGroup.Use(middleware.UserExistenceCheck(users))
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.GET("/users", h.GetUserList)
	adminGroup.PUT("/users/:id/role", h.UpdateUserRole)
	adminGroup.DELETE("/users/:id", h.DeleteUser)
}
