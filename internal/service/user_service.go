package service

import (
	"errors"
	"log"
	"time"

	"project-registration-server/internal/common"
	"project-registration-server/internal/config"
	"project-registration-server/internal/consts"
	"project-registration-server/internal/model"
	"project-registration-server/internal/repository"
	"project-registration-server/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultTokenTTL = 30 * time.Minute

// UserSummary 管理端用户列表项。
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

// Register 创建普通用户，口令立即按当前配置的算法加盐摘要。
func (s *Service) Register(username, password string) (*model.User, error) {
	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return nil, common.NewValidationError(msg)
	}

	exists, err := s.repos.User.UsernameExists(username)
	if err != nil {
		log.Printf("❌ 检查用户名失败: %v", err)
		return nil, common.NewInternalError("注册失败，请稍后重试")
	}
	if exists {
		return nil, common.NewConflictError("用户名已存在")
	}

	user, err := newUserWithPassword(username, password, consts.RoleUser)
	if err != nil {
		return nil, err
	}
	if err := s.repos.User.Create(user); err != nil {
		// 并发注册同名用户时由唯一索引兜底
		if isDuplicateKey(err) {
			return nil, common.NewConflictError("用户名已存在")
		}
		log.Printf("❌ 创建用户失败: %v", err)
		return nil, common.NewInternalError("注册失败，请稍后重试")
	}
	return user, nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func newUserWithPassword(username, password, role string) (*model.User, error) {
	algorithm := config.Get().Security.PasswordAlgorithm
	if algorithm == "" {
		algorithm = consts.PasswordAlgorithmHMACSHA512
	}
	hash, salt, err := utils.HashPassword(algorithm, password)
	if err != nil {
		log.Printf("❌ 口令摘要失败: %v", err)
		return nil, common.NewInternalError("口令处理失败")
	}
	return &model.User{
		Username:          username,
		PasswordHash:      hash,
		PasswordSalt:      salt,
		PasswordAlgorithm: algorithm,
		Role:              role,
	}, nil
}

// Authenticate 校验用户名与口令，失败时返回 nil 用户且不区分具体原因。
func (s *Service) Authenticate(username, password string) (*model.User, error) {
	user, err := s.repos.User.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("❌ 查询用户失败: %v", err)
		return nil, common.NewInternalError("登录失败，请稍后重试")
	}
	if !utils.VerifyPassword(user.PasswordAlgorithm, password, user.PasswordHash, user.PasswordSalt) {
		return nil, nil
	}
	return user, nil
}

// Login 成功时返回 true 与用户角色；用户不存在或口令错误返回 false, ""。
func (s *Service) Login(username, password string) (bool, string, error) {
	user, err := s.Authenticate(username, password)
	if err != nil || user == nil {
		return false, "", err
	}
	return true, user.Role, nil
}

func (s *Service) IssueLoginToken(user *model.User) (string, error) {
	ttl := time.Duration(config.Get().JWT.ExpirationMinutes) * time.Minute
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	token, err := utils.GenerateLoginToken(user.ID, user.Username, user.Role, ttl)
	if err != nil {
		log.Printf("❌ 签发令牌失败: %v", err)
		return "", common.NewInternalError("登录失败，请稍后重试")
	}
	return token, nil
}

func (s *Service) ListUsers() ([]UserSummary, error) {
	users, err := s.repos.User.List()
	if err != nil {
		return nil, common.NewInternalError("获取用户列表失败")
	}
	result := make([]UserSummary, 0, len(users))
	for _, u := range users {
		result = append(result, UserSummary{ID: u.ID, Username: u.Username, Role: u.Role})
	}
	return result, nil
}

// UpdateUserRole 规范角色大小写后写入；用户不存在返回 false。
func (s *Service) UpdateUserRole(userID uuid.UUID, role string) (bool, error) {
	normalized, ok := utils.NormalizeRole(role)
	if !ok {
		return false, common.NewValidationError("角色只能是 User 或 Admin")
	}

	found := false
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if _, err := tx.User.FindByID(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		return tx.User.UpdateRoleByID(userID, normalized)
	})
	if err != nil {
		log.Printf("❌ 更新用户角色失败: %v", err)
		return false, common.NewInternalError("更新角色失败")
	}
	return found, nil
}

// DeleteUser 在同一事务中依次删除头像、地址、个人信息和用户本身。
func (s *Service) DeleteUser(userID uuid.UUID) (bool, error) {
	found := false
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if _, err := tx.User.FindByID(userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		person, err := tx.Person.FindByUserID(userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if person != nil {
			if person.ProfilePictureID != nil {
				if err := tx.Picture.DeleteByID(*person.ProfilePictureID); err != nil {
					return err
				}
			}
			if err := tx.Address.DeleteByID(person.AddressID); err != nil {
				return err
			}
			if err := tx.Person.DeleteByID(person.ID); err != nil {
				return err
			}
		}
		return tx.User.DeleteByID(userID)
	})
	if err != nil {
		log.Printf("❌ 删除用户失败: %v", err)
		return false, common.NewInternalError("删除用户失败")
	}
	return found, nil
}
