package router

import (
	"project-registration-server/internal/handler"
	adminhandler "project-registration-server/internal/handler/admin"
	"project-registration-server/internal/middleware"
	"project-registration-server/internal/repository"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler      *handler.Handler
	adminHandler *adminhandler.Handler
	userStore    repository.UserStore
}

func NewRouter(h *handler.Handler, ah *adminhandler.Handler, repos *repository.Repositories) *Router {
	return &Router{
		handler:      h,
		adminHandler: ah,
		userStore:    repos.User,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	// 应用请求体大小限制中间件
	api.Use(middleware.BodyLimitMiddleware())

	// 认证限流：注册、登录、初始化共用同一个限流器
	authLimiter := middleware.RateLimitMiddleware("auth")

	registerPublicRoutes(api)
	registerSystemRoutes(api, authLimiter, rt.handler)
	registerAuthRoutes(api, authLimiter, rt.handler)
	registerUserRoutes(api, rt.handler, rt.userStore)
	registerAdminRoutes(api, rt.adminHandler, rt.userStore)
}
