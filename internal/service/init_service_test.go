package service

import (
	"testing"

	"project-registration-server/internal/common"
	"project-registration-server/internal/consts"
)

// 测试内容：首次初始化创建管理员，之后再次初始化返回 conflict。
func TestInitializeAdmin(t *testing.T) {
	svc, _ := setupTestService(t)

	initialized, err := svc.IsInitialized()
	if err != nil || initialized {
		t.Fatalf("初始状态应未初始化: %v %v", initialized, err)
	}

	admin, err := svc.InitializeAdmin("root", "password123")
	if err != nil {
		t.Fatalf("InitializeAdmin: %v", err)
	}
	if admin.Role != consts.RoleAdmin {
		t.Fatalf("期望 Admin，实际 %q", admin.Role)
	}

	initialized, _ = svc.IsInitialized()
	if !initialized {
		t.Fatalf("初始化后应返回 true")
	}

	if _, err := svc.InitializeAdmin("root2", "password123"); !common.IsErrorCode(err, common.ErrorCodeConflict) {
		t.Fatalf("期望 conflict，实际 %v", err)
	}

	ok, role, err := svc.Login("root", "password123")
	if err != nil || !ok || role != consts.RoleAdmin {
		t.Fatalf("管理员登录: ok=%v role=%q err=%v", ok, role, err)
	}
}

func TestInitializeAdmin_UsernameTaken(t *testing.T) {
	svc, _ := setupTestService(t)
	mustRegister(t, svc, "root")

	if _, err := svc.InitializeAdmin("root", "password123"); !common.IsErrorCode(err, common.ErrorCodeConflict) {
		t.Fatalf("期望 conflict，实际 %v", err)
	}
}
