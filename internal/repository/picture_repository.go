package repository

import (
	"project-registration-server/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PictureStore interface {
	FindByID(id uuid.UUID) (*model.Picture, error)
	Create(picture *model.Picture) error
	Save(picture *model.Picture) error
	DeleteByID(id uuid.UUID) error
}

type PictureRepository struct {
	db *gorm.DB
}

func (r *PictureRepository) FindByID(id uuid.UUID) (*model.Picture, error) {
	var picture model.Picture
	if err := r.db.Where("id = ?", id).First(&picture).Error; err != nil {
		return nil, err
	}
	return &picture, nil
}

func (r *PictureRepository) Create(picture *model.Picture) error {
	return r.db.Create(picture).Error
}

func (r *PictureRepository) Save(picture *model.Picture) error {
	return r.db.Save(picture).Error
}

func (r *PictureRepository) DeleteByID(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&model.Picture{}).Error
}
