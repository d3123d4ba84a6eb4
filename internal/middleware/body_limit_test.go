package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-registration-server/internal/config"

	"github.com/gin-gonic/gin"
)

func TestUploadBodyLimitMiddleware_RejectsTooLarge(t *testing.T) {
	withConfig(t, func(cfg *config.Config) { cfg.Picture.MaxSizeMB = 1 })

	r := gin.New()
	r.POST("/upload", UploadBodyLimitMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	payload := bytes.Repeat([]byte("a"), 3*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(payload))
	req.ContentLength = int64(len(payload))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}
}

// 测试内容：验证普通接口超出上限时读取请求体失败，multipart 请求不受该限制。
func TestBodyLimitMiddleware_LimitsNonMultipart(t *testing.T) {
	withConfig(t, func(cfg *config.Config) { cfg.Server.MaxBodySizeMB = 1 })

	r := gin.New()
	r.Use(BodyLimitMiddleware())
	r.POST("/x", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	payload := bytes.Repeat([]byte("a"), 2*1024*1024)

	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/x", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("multipart 期望 200，实际为 %d", w.Code)
	}
}
