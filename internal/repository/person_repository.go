package repository

import (
	"project-registration-server/internal/consts"
	"project-registration-server/internal/model"

	"github.com/google/uuid"
)

type PersonStore interface {
	FindByID(id uuid.UUID) (*model.Person, error)
	FindByUserID(userID uuid.UUID) (*model.Person, error)
	Create(person *model.Person) error
	UpdateFieldByID(personID uuid.UUID, field consts.PersonField, value string) error
	SetProfilePictureID(personID uuid.UUID, pictureID uuid.UUID) error
	DeleteByID(personID uuid.UUID) error
	FieldExists(field consts.PersonField, value string, excludePersonID *uuid.UUID) (bool, error)
}
