package router

import (
	"project-registration-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.Handler) {
	auth := api.Group("/auth")
	auth.POST("/register", authLimiter, h.Register)
	auth.POST("/login", authLimiter, h.Login)
}
