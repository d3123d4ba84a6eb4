package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"project-registration-server/internal/consts"
	"project-registration-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证注册成功与重复注册返回 409。
func TestRegister(t *testing.T) {
	setupTestHandler(t)

	r := gin.New()
	r.POST("/register", testHandler.Register)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/register", gin.H{"username": "alice", "password": "password123"}))
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/register", gin.H{"username": "alice", "password": "password123"}))
	if w.Code != http.StatusConflict {
		t.Fatalf("期望 409，实际为 %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/register", gin.H{"username": "bob"}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("缺少密码期望 400，实际为 %d", w.Code)
	}
}

// 测试内容：验证登录成功返回可解析的令牌，口令错误返回 401。
func TestLogin(t *testing.T) {
	setupTestHandler(t)
	if _, err := testService.Register("alice", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	r := gin.New()
	r.POST("/login", testHandler.Login)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/login", gin.H{"username": "alice", "password": "password123"}))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["role"] != consts.RoleUser {
		t.Fatalf("期望角色 User，实际 %v", body["role"])
	}
	token, _ := body["token"].(string)
	claims, err := utils.ParseLoginToken(token)
	if err != nil || claims.Username != "alice" {
		t.Fatalf("令牌无效: %v %+v", err, claims)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/login", gin.H{"username": "alice", "password": "wrong"}))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("期望 401，实际为 %d", w.Code)
	}
}

// 测试内容：验证初始化状态查询与首次初始化，重复初始化返回 409。
func TestInit(t *testing.T) {
	setupTestHandler(t)

	r := gin.New()
	r.GET("/init", testHandler.GetInitState)
	r.POST("/init", testHandler.Init)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/init", nil))
	if w.Code != http.StatusOK || decodeBody(t, w)["initialized"] != false {
		t.Fatalf("初始状态应未初始化: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/init", gin.H{"username": "root", "password": "password123"}))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodPost, "/init", gin.H{"username": "root2", "password": "password123"}))
	if w.Code != http.StatusConflict {
		t.Fatalf("期望 409，实际为 %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/init", nil))
	if decodeBody(t, w)["initialized"] != true {
		t.Fatalf("初始化后应返回 true")
	}
}
