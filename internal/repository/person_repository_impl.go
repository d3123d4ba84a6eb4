package repository

import (
	"fmt"

	"project-registration-server/internal/consts"
	"project-registration-server/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PersonRepository struct {
	db *gorm.DB
}

func (r *PersonRepository) FindByID(id uuid.UUID) (*model.Person, error) {
	var person model.Person
	if err := r.db.Where("id = ?", id).First(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepository) FindByUserID(userID uuid.UUID) (*model.Person, error) {
	var person model.Person
	if err := r.db.Where("user_id = ?", userID).First(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *PersonRepository) Create(person *model.Person) error {
	return r.db.Create(person).Error
}

// UpdateFieldByID 只更新单个列；field 必须是 consts.PersonField 中的合法值，存在性由调用方确认。
func (r *PersonRepository) UpdateFieldByID(personID uuid.UUID, field consts.PersonField, value string) error {
	if !field.Valid() {
		return fmt.Errorf("unknown person field: %s", field)
	}
	return r.db.Model(&model.Person{}).Where("id = ?", personID).Update(string(field), value).Error
}

func (r *PersonRepository) SetProfilePictureID(personID uuid.UUID, pictureID uuid.UUID) error {
	return r.db.Model(&model.Person{}).Where("id = ?", personID).Update("profile_picture_id", pictureID).Error
}

func (r *PersonRepository) DeleteByID(personID uuid.UUID) error {
	return r.db.Where("id = ?", personID).Delete(&model.Person{}).Error
}

// FieldExists 判断是否已有其他 Person 使用了该值（精确匹配）。
func (r *PersonRepository) FieldExists(field consts.PersonField, value string, excludePersonID *uuid.UUID) (bool, error) {
	if !field.IsUnique() {
		return false, fmt.Errorf("field %s is not a unique person field", field)
	}
	query := r.db.Model(&model.Person{})
	if excludePersonID != nil {
		query = query.Where("id <> ?", *excludePersonID)
	}

	var count int64
	if err := query.Where(string(field)+" = ?", value).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
