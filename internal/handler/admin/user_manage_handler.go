package admin

import (
	"net/http"

	"project-registration-server/internal/dto"
	"project-registration-server/internal/middleware"
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

func parseUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的用户ID"})
		return uuid.Nil, false
	}
	return id, true
}

// GetUserList 获取全部用户（ID、用户名、角色）
func (h *Handler) GetUserList(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		writeServiceError(c, err, "获取用户列表失败")
		return
	}

	list := make([]dto.UserSummaryResponse, 0, len(users))
	for _, u := range users {
		list = append(list, dto.UserSummaryResponse{ID: u.ID.String(), Username: u.Username, Role: u.Role})
	}
	c.JSON(http.StatusOK, gin.H{"list": list, "total": len(list)})
}

func (h *Handler) UpdateUserRole(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	updated, err := h.service.UpdateUserRole(id, req.Role)
	if err != nil {
		writeServiceError(c, err, "更新角色失败")
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "用户不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "角色已更新"})
}

// DeleteUser 删除用户及其个人信息、地址和头像
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteUser(id)
	if err != nil {
		writeServiceError(c, err, "删除用户失败")
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "用户不存在"})
		return
	}

	middleware.ClearUserExistenceCache(id)
	c.JSON(http.StatusOK, gin.H{"message": "用户已删除"})
}
