package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                uuid.UUID `json:"id" gorm:"type:varchar(36);primaryKey"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Username          string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash      string    `json:"-" gorm:"not null"`
	PasswordSalt      string    `json:"-"`
	PasswordAlgorithm string    `json:"-" gorm:"size:20;not null;default:hmac-sha512"`
	Role              string    `json:"role" gorm:"size:20;not null;default:User"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate 在未指定主键时生成新的 UUID。
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
