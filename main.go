package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"project-registration-server/internal/config"
	"project-registration-server/internal/consts"
	"project-registration-server/internal/db"
	"project-registration-server/internal/di"
	"project-registration-server/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	configDir := flag.String("config-dir", "config", "配置文件目录")
	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	flag.Parse()

	config.InitConfig(*configDir)
	db.InitDB()

	app, err := di.InitializeApplication(db.DB)
	if err != nil {
		log.Fatalf("❌ 应用初始化失败: %v", err)
	}

	gin.SetMode(config.Get().Server.Mode)

	r := setupEngine(app)

	// 导出模式
	if *exportRoutes {
		if err := exportAPI(r, "routes.json"); err != nil {
			log.Fatalf("❌ 路由导出失败: %v", err)
		}
		log.Println("✅ 路由已成功导出到 routes.json")
		return
	}

	printWelcomeMessage()

	srv := &http.Server{
		Addr:              ":" + config.Get().Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 服务启动成功，运行在 :%s\n", config.Get().Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ 服务启动失败: %s\n", err)
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ 服务强制关闭: %v", err)
	}
	if err := service.CloseRedisClient(); err != nil {
		log.Printf("⚠️ %v", err)
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("✅ 服务已退出")
}

func setupEngine(app *di.Application) *gin.Engine {
	r := gin.Default()
	app.Router.Init(r)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "API not found"})
	})
	return r
}

func printWelcomeMessage() {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  版本     : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🗄️  数据库   : %s\n", config.Get().Database.Type)
	fmt.Printf(" │   🔥  服务端口 : %s\n", config.Get().Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

type routeInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

func exportAPI(r *gin.Engine, target string) error {
	routes := r.Routes()
	exportList := make([]routeInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, routeInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(target, file, 0644)
}
