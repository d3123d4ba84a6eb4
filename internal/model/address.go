package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Address struct {
	ID              uuid.UUID `json:"id" gorm:"type:varchar(36);primaryKey"`
	City            string    `json:"city" gorm:"size:100;not null"`
	Street          string    `json:"street" gorm:"size:100;not null"`
	HouseNumber     string    `json:"house_number" gorm:"size:10;not null"`
	ApartmentNumber string    `json:"apartment_number" gorm:"size:10"`
}

func (Address) TableName() string {
	return "addresses"
}

func (a *Address) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
