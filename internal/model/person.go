package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person 与 User、Address、Picture 之间只通过 ID 关联，不持有对象引用。
type Person struct {
	ID               uuid.UUID  `json:"id" gorm:"type:varchar(36);primaryKey"`
	FirstName        string     `json:"first_name" gorm:"size:100;not null"`
	LastName         string     `json:"last_name" gorm:"size:100;not null"`
	PersonalCode     string     `json:"personal_code" gorm:"uniqueIndex;size:32;not null"`
	PhoneNumber      string     `json:"phone_number" gorm:"uniqueIndex;size:32;not null"`
	Email            string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	AddressID        uuid.UUID  `json:"address_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	UserID           uuid.UUID  `json:"user_id" gorm:"type:varchar(36);uniqueIndex;not null"`
	ProfilePictureID *uuid.UUID `json:"profile_picture_id" gorm:"type:varchar(36);index"`
}

func (Person) TableName() string {
	return "persons"
}

func (p *Person) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
