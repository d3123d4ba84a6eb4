package middleware

import (
	"fmt"
	"net/http"

	"project-registration-server/internal/config"

	"github.com/gin-gonic/gin"
)

// multipartOverheadBytes 为 multipart 边界与其他表单字段预留的空间
const multipartOverheadBytes = 1 << 20

// BodyLimitMiddleware 限制普通接口的请求体大小，上传接口由 UploadBodyLimitMiddleware 负责
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isMultipart(c) {
			c.Next()
			return
		}

		maxSizeMB := config.Get().Server.MaxBodySizeMB
		if maxSizeMB <= 0 {
			maxSizeMB = 2
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(maxSizeMB)*1024*1024)
		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制带头像的 multipart 请求体大小
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := config.Get().Picture.MaxSizeMB
		if maxSizeMB <= 0 {
			maxSizeMB = 10
		}
		maxBytes := int64(maxSizeMB)*1024*1024 + multipartOverheadBytes

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB)})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func isMultipart(c *gin.Context) bool {
	return c.ContentType() == "multipart/form-data"
}
