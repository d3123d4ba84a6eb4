package router

import (
	"project-registration-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup) {
	api.GET("/ping", handler.Ping)
}
