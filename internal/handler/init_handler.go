package handler

import (
	"net/http"
	"sync"

	"project-registration-server/internal/dto"

	"github.com/gin-gonic/gin"
)

var initLock sync.Mutex

func (h *Handler) GetInitState(c *gin.Context) {
	initialized, err := h.service.IsInitialized()
	if err != nil {
		WriteServiceError(c, err, "获取初始化状态失败")
		return
	}
	c.JSON(http.StatusOK, dto.InitStateResponse{Initialized: initialized})
}

// Init 创建第一个管理员账号
func (h *Handler) Init(c *gin.Context) {
	// 加锁防止竞态条件
	initLock.Lock()
	defer initLock.Unlock()

	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	if _, err := h.service.InitializeAdmin(req.Username, req.Password); err != nil {
		WriteServiceError(c, err, "初始化失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "初始化成功"})
}
