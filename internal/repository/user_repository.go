package repository

import (
	"project-registration-server/internal/model"

	"github.com/google/uuid"
)

type UserStore interface {
	FindByID(id uuid.UUID) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	UsernameExists(username string) (bool, error)
	Create(user *model.User) error
	UpdateRoleByID(userID uuid.UUID, role string) error
	DeleteByID(userID uuid.UUID) error
	List() ([]model.User, error)
	CountByRole(role string) (int64, error)
}
