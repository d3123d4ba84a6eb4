package service

import (
	"log"

	"project-registration-server/internal/common"
	"project-registration-server/internal/consts"
	"project-registration-server/internal/model"
	"project-registration-server/internal/repository"
	"project-registration-server/internal/utils"
)

// IsInitialized 返回系统中是否已存在管理员。
func (s *Service) IsInitialized() (bool, error) {
	count, err := s.repos.User.CountByRole(consts.RoleAdmin)
	if err != nil {
		return false, common.NewInternalError("获取初始化状态失败")
	}
	return count > 0, nil
}

// InitializeAdmin 在没有任何管理员时创建第一个管理员账号，之后再调用返回 conflict。
func (s *Service) InitializeAdmin(username, password string) (*model.User, error) {
	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return nil, common.NewValidationError(msg)
	}

	admin, err := newUserWithPassword(username, password, consts.RoleAdmin)
	if err != nil {
		return nil, err
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		count, err := tx.User.CountByRole(consts.RoleAdmin)
		if err != nil {
			return err
		}
		if count > 0 {
			return common.NewConflictError("系统已初始化")
		}
		exists, err := tx.User.UsernameExists(username)
		if err != nil {
			return err
		}
		if exists {
			return common.NewConflictError("用户名已存在")
		}
		return tx.User.Create(admin)
	})
	if err != nil {
		if _, ok := common.AsServiceError(err); ok {
			return nil, err
		}
		if isDuplicateKey(err) {
			return nil, common.NewConflictError("用户名已存在")
		}
		log.Printf("❌ 初始化管理员失败: %v", err)
		return nil, common.NewInternalError("初始化失败")
	}
	log.Printf("✅ 已创建管理员账号: %s", username)
	return admin, nil
}
