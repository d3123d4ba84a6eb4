package di

import (
	"testing"

	"project-registration-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证依赖注入能组装出完整应用并注册路由。
func TestInitializeApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	app, err := InitializeApplication(testutils.SetupDB(t))
	if err != nil {
		t.Fatalf("InitializeApplication: %v", err)
	}
	if app.Router == nil || app.Service == nil || app.Repositories == nil {
		t.Fatalf("应用组件不完整: %+v", app)
	}

	r := gin.New()
	app.Router.Init(r)
	if len(r.Routes()) == 0 {
		t.Fatalf("期望注册路由")
	}
}
