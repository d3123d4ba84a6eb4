package handler

import (
	"net/http"

	"project-registration-server/internal/common/httpx"
	"project-registration-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service *service.Service
}

func NewHandler(appService *service.Service) *Handler {
	return &Handler{service: appService}
}

// WriteServiceError 将 service 层错误写为统一的 JSON 响应。
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	httpx.WriteServiceError(c, err, fallbackMessage)
}

// currentUserID 从 JWT 中间件写入的上下文中取当前用户 ID，失败时已写出 401。
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("id")
	uid, ok := value.(uuid.UUID)
	if !exists || !ok || uid == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取用户ID失败"})
		return uuid.Nil, false
	}
	return uid, true
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
