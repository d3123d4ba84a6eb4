package service

import (
	"log"

	"project-registration-server/internal/common"
	"project-registration-server/internal/consts"

	"github.com/google/uuid"
)

var uniquePersonFields = []struct {
	field   consts.PersonField
	message string
}{
	{consts.PersonFieldPersonalCode, "个人代码已被使用"},
	{consts.PersonFieldPhoneNumber, "电话号码已被使用"},
	{consts.PersonFieldEmail, "邮箱已被使用"},
}

// CheckPersonInfoUnique 依次检查个人代码、电话号码、邮箱，遇到第一个冲突即返回。
// 传 nil 表示跳过该项。
func (s *Service) CheckPersonInfoUnique(personalCode, phoneNumber, email *string) error {
	return s.checkPersonInfoUnique(nil, personalCode, phoneNumber, email)
}

// CheckPersonInfoUniqueExcept 与 CheckPersonInfoUnique 相同，但忽略 excludePersonID 自身持有的值。
func (s *Service) CheckPersonInfoUniqueExcept(excludePersonID uuid.UUID, personalCode, phoneNumber, email *string) error {
	return s.checkPersonInfoUnique(&excludePersonID, personalCode, phoneNumber, email)
}

func (s *Service) checkPersonInfoUnique(excludePersonID *uuid.UUID, values ...*string) error {
	for i, item := range uniquePersonFields {
		value := values[i]
		if value == nil {
			continue
		}
		exists, err := s.repos.Person.FieldExists(item.field, *value, excludePersonID)
		if err != nil {
			log.Printf("❌ 唯一性检查失败 (%s): %v", item.field, err)
			return common.NewInternalError("唯一性检查失败")
		}
		if exists {
			return common.NewFieldConflictError(item.field, item.message)
		}
	}
	return nil
}

// CheckPersonFieldUnique 针对单个字段的唯一性检查，非唯一字段直接通过。
func (s *Service) CheckPersonFieldUnique(excludePersonID uuid.UUID, field consts.PersonField, value string) error {
	var personalCode, phoneNumber, email *string
	switch field {
	case consts.PersonFieldPersonalCode:
		personalCode = &value
	case consts.PersonFieldPhoneNumber:
		phoneNumber = &value
	case consts.PersonFieldEmail:
		email = &value
	default:
		return nil
	}
	return s.CheckPersonInfoUniqueExcept(excludePersonID, personalCode, phoneNumber, email)
}
