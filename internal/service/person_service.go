package service

import (
	"errors"
	"log"

	"project-registration-server/internal/common"
	"project-registration-server/internal/consts"
	"project-registration-server/internal/model"
	"project-registration-server/internal/repository"
	"project-registration-server/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddressDraft struct {
	City            string
	Street          string
	HouseNumber     string
	ApartmentNumber string
}

type PersonDraft struct {
	FirstName    string
	LastName     string
	PersonalCode string
	PhoneNumber  string
	Email        string
	Address      AddressDraft
}

// PersonDetail 个人信息及其按 ID 解析出的地址与头像。
type PersonDetail struct {
	Person  *model.Person
	Address *model.Address
	Picture *model.Picture
}

// AddPersonInfo 为用户创建个人信息；用户不存在或已有个人信息时返回 false。
// 唯一性由调用方事先通过 CheckPersonInfoUnique 保证。
func (s *Service) AddPersonInfo(userID uuid.UUID, draft PersonDraft, picture *PictureUpload) (bool, error) {
	if err := validatePersonDraft(draft); err != nil {
		return false, err
	}
	if _, err := s.repos.User.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, common.NewInternalError("获取用户失败")
	}
	if _, err := s.repos.Person.FindByUserID(userID); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, common.NewInternalError("获取个人信息失败")
	}

	var normalized *utils.NormalizedPicture
	if picture != nil {
		pic, err := normalizeUpload(picture)
		if err != nil {
			return false, err
		}
		normalized = pic
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		person := &model.Person{
			FirstName:    draft.FirstName,
			LastName:     draft.LastName,
			PersonalCode: draft.PersonalCode,
			PhoneNumber:  draft.PhoneNumber,
			Email:        draft.Email,
			UserID:       userID,
		}

		if normalized != nil {
			created, err := s.UpsertPicture(tx, nil, normalized, picture.FileName)
			if err != nil {
				return err
			}
			person.ProfilePictureID = &created.ID
		}

		address := newAddress(draft.Address)
		if err := tx.Address.Create(address); err != nil {
			return err
		}
		person.AddressID = address.ID

		return tx.Person.Create(person)
	})
	if err != nil {
		if isDuplicateKey(err) {
			return false, common.NewConflictError("个人信息与已有记录冲突")
		}
		log.Printf("❌ 保存个人信息失败: %v", err)
		return false, common.NewInternalError("保存个人信息失败")
	}
	return true, nil
}

func validatePersonDraft(draft PersonDraft) error {
	for _, item := range []struct{ name, value string }{
		{"名", draft.FirstName},
		{"姓", draft.LastName},
		{"个人代码", draft.PersonalCode},
		{"电话号码", draft.PhoneNumber},
		{"邮箱", draft.Email},
	} {
		if ok, msg := utils.ValidateRequired(item.name, item.value); !ok {
			return common.NewValidationError(msg)
		}
	}
	return validateAddressDraft(draft.Address)
}

// validateAddressDraft 公寓号允许为空。
func validateAddressDraft(draft AddressDraft) error {
	for _, item := range []struct{ name, value string }{
		{"城市", draft.City},
		{"街道", draft.Street},
		{"门牌号", draft.HouseNumber},
	} {
		if ok, msg := utils.ValidateRequired(item.name, item.value); !ok {
			return common.NewValidationError(msg)
		}
	}
	return nil
}

func newAddress(draft AddressDraft) *model.Address {
	address := &model.Address{}
	applyAddress(address, draft)
	return address
}

func applyAddress(dst *model.Address, draft AddressDraft) {
	dst.City = draft.City
	dst.Street = draft.Street
	dst.HouseNumber = draft.HouseNumber
	dst.ApartmentNumber = draft.ApartmentNumber
}

func (s *Service) GetPersonInfo(personID uuid.UUID) (*PersonDetail, error) {
	person, err := s.repos.Person.FindByID(personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("个人信息不存在")
		}
		return nil, common.NewInternalError("获取个人信息失败")
	}
	return s.resolvePersonDetail(person)
}

func (s *Service) GetPersonInfoByUserID(userID uuid.UUID) (*PersonDetail, error) {
	person, err := s.findPersonByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.resolvePersonDetail(person)
}

// PersonIDByUserID 返回用户对应的个人信息 ID。
func (s *Service) PersonIDByUserID(userID uuid.UUID) (uuid.UUID, error) {
	person, err := s.findPersonByUserID(userID)
	if err != nil {
		return uuid.Nil, err
	}
	return person.ID, nil
}

func (s *Service) findPersonByUserID(userID uuid.UUID) (*model.Person, error) {
	person, err := s.repos.Person.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("个人信息不存在")
		}
		return nil, common.NewInternalError("获取个人信息失败")
	}
	return person, nil
}

func (s *Service) resolvePersonDetail(person *model.Person) (*PersonDetail, error) {
	detail := &PersonDetail{Person: person}

	address, err := s.repos.Address.FindByID(person.AddressID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewInternalError("获取地址失败")
	}
	detail.Address = address

	if person.ProfilePictureID != nil {
		picture, err := s.repos.Picture.FindByID(*person.ProfilePictureID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewInternalError("获取头像失败")
		}
		detail.Picture = picture
	}
	return detail, nil
}

// UpdateField 更新单个字段，不做唯一性检查；个人信息不存在返回 false。
func (s *Service) UpdateField(personID uuid.UUID, field consts.PersonField, value string) (bool, error) {
	if !field.Valid() {
		return false, common.NewValidationError("不支持更新该字段")
	}
	if ok, msg := utils.ValidateRequired(string(field), value); !ok {
		return false, common.NewValidationError(msg)
	}

	found := false
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if _, err := tx.Person.FindByID(personID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true
		return tx.Person.UpdateFieldByID(personID, field, value)
	})
	if err != nil {
		if isDuplicateKey(err) {
			return false, common.NewFieldConflictError(field, "该值已被使用")
		}
		log.Printf("❌ 更新字段 %s 失败: %v", field, err)
		return false, common.NewInternalError("更新个人信息失败")
	}
	return found, nil
}

// UpdateAddress 原地修改个人信息关联的地址，地址 ID 保持不变。
func (s *Service) UpdateAddress(personID uuid.UUID, draft AddressDraft) (bool, error) {
	if err := validateAddressDraft(draft); err != nil {
		return false, err
	}

	found := false
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		person, err := tx.Person.FindByID(personID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		address, err := tx.Address.FindByID(person.AddressID)
		if err != nil {
			return err
		}
		applyAddress(address, draft)
		return tx.Address.Save(address)
	})
	if err != nil {
		log.Printf("❌ 更新地址失败: %v", err)
		return false, common.NewInternalError("更新地址失败")
	}
	return found, nil
}

// UpdateProfilePicture 归一化新头像后覆盖已有头像记录，没有时新建并挂到个人信息上。
func (s *Service) UpdateProfilePicture(personID uuid.UUID, upload PictureUpload) (bool, error) {
	person, err := s.repos.Person.FindByID(personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, common.NewInternalError("获取个人信息失败")
	}

	normalized, err := normalizeUpload(&upload)
	if err != nil {
		return false, err
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		picture, err := s.UpsertPicture(tx, person.ProfilePictureID, normalized, upload.FileName)
		if err != nil {
			return err
		}
		if person.ProfilePictureID == nil || *person.ProfilePictureID != picture.ID {
			return tx.Person.SetProfilePictureID(person.ID, picture.ID)
		}
		return nil
	})
	if err != nil {
		log.Printf("❌ 更新头像失败: %v", err)
		return false, common.NewInternalError("更新头像失败")
	}
	return true, nil
}
