package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-registration-server/internal/consts"
	"project-registration-server/internal/repository"
	"project-registration-server/internal/service"
	"project-registration-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func setupAdmin(t *testing.T) (*gin.Engine, *service.Service, *repository.Repositories) {
	t.Helper()
	repos := repository.NewRepositories(testutils.SetupDB(t))
	svc := service.NewService(repos)
	h := NewHandler(svc)

	r := gin.New()
	g := r.Group("/admin")
	g.GET("/users", h.GetUserList)
	g.PUT("/users/:id/role", h.UpdateUserRole)
	g.DELETE("/users/:id", h.DeleteUser)
	return r, svc, repos
}

func roleRequest(id string, role string) *http.Request {
	raw, _ := json.Marshal(gin.H{"role": role})
	req := httptest.NewRequest(http.MethodPut, "/admin/users/"+id+"/role", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// 测试内容：验证用户列表返回 ID、用户名与角色。
func TestGetUserList(t *testing.T) {
	r, svc, _ := setupAdmin(t)
	_, _ = svc.Register("alice", "password123")
	_, _ = svc.Register("bob", "password123")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	var body struct {
		List []struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"list"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 2 || body.List[0].Username != "alice" || body.List[0].Role != consts.RoleUser {
		t.Fatalf("非预期列表: %s", w.Body.String())
	}
}

// 测试内容：验证角色更新的规范化、未知用户 404、非法角色 400、非法 ID 400。
func TestUpdateUserRole(t *testing.T) {
	r, svc, repos := setupAdmin(t)
	user, _ := svc.Register("alice", "password123")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, roleRequest(user.ID.String(), "admin"))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
	got, _ := repos.User.FindByID(user.ID)
	if got.Role != consts.RoleAdmin {
		t.Fatalf("期望 Admin，实际 %q", got.Role)
	}

	cases := []struct {
		id   string
		role string
		want int
	}{
		{uuid.NewString(), "User", http.StatusNotFound},
		{user.ID.String(), "owner", http.StatusBadRequest},
		{"not-a-uuid", "User", http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, roleRequest(tc.id, tc.role))
		if w.Code != tc.want {
			t.Fatalf("id=%s role=%s: 期望 %d，实际为 %d", tc.id, tc.role, tc.want, w.Code)
		}
	}
}

// 测试内容：验证删除用户成功后再次删除返回 404。
func TestDeleteUser(t *testing.T) {
	r, svc, repos := setupAdmin(t)
	user, _ := svc.Register("alice", "password123")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/users/"+user.ID.String(), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}
	if exists, _ := repos.User.UsernameExists("alice"); exists {
		t.Fatalf("用户应被删除")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/users/"+user.ID.String(), nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w.Code)
	}
}
