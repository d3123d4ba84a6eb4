package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Picture 存储归一化后的头像二进制，Width/Height 始终为裁剪后的画布尺寸。
type Picture struct {
	ID          uuid.UUID `json:"id" gorm:"type:varchar(36);primaryKey"`
	FileName    string    `json:"file_name" gorm:"size:255;not null"`
	Data        []byte    `json:"-" gorm:"not null"`
	ContentType string    `json:"content_type" gorm:"size:100;not null"`
	Width       int       `json:"width" gorm:"not null"`
	Height      int       `json:"height" gorm:"not null"`
}

func (Picture) TableName() string {
	return "pictures"
}

func (p *Picture) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
