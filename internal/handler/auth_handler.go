package handler

import (
	"net/http"

	"project-registration-server/internal/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	user, err := h.service.Register(req.Username, req.Password)
	if err != nil {
		WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      user.ID,
		"message": "注册成功",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	user, err := h.service.Authenticate(req.Username, req.Password)
	if err != nil {
		WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "用户名或密码错误"})
		return
	}

	token, err := h.service.IssueLoginToken(user)
	if err != nil {
		WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:   token,
		Role:    user.Role,
		Message: "登录成功",
	})
}
