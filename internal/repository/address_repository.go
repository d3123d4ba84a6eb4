package repository

import (
	"project-registration-server/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddressStore interface {
	FindByID(id uuid.UUID) (*model.Address, error)
	Create(address *model.Address) error
	Save(address *model.Address) error
	DeleteByID(id uuid.UUID) error
}

type AddressRepository struct {
	db *gorm.DB
}

func (r *AddressRepository) FindByID(id uuid.UUID) (*model.Address, error) {
	var address model.Address
	if err := r.db.Where("id = ?", id).First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *AddressRepository) Create(address *model.Address) error {
	return r.db.Create(address).Error
}

func (r *AddressRepository) Save(address *model.Address) error {
	return r.db.Save(address).Error
}

func (r *AddressRepository) DeleteByID(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&model.Address{}).Error
}
