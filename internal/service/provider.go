package service

import (
	"project-registration-server/internal/repository"
)

// Service 聚合注册、个人信息、头像与管理操作，所有持久化都经由 Repositories。
type Service struct {
	repos *repository.Repositories
}

func NewService(repos *repository.Repositories) *Service {
	return &Service{repos: repos}
}
