package service

import (
	"errors"
	"log"

	"project-registration-server/internal/common"
	"project-registration-server/internal/model"
	"project-registration-server/internal/repository"
	"project-registration-server/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PictureUpload 客户端上传的原始头像。
type PictureUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// UpsertPicture 在调用方的事务内写入头像：existingID 指向已有记录时原地覆盖，否则新建。
func (s *Service) UpsertPicture(repos *repository.Repositories, existingID *uuid.UUID, pic *utils.NormalizedPicture, fileName string) (*model.Picture, error) {
	if existingID != nil {
		current, err := repos.Picture.FindByID(*existingID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if current != nil {
			applyPicture(current, pic, fileName)
			if err := repos.Picture.Save(current); err != nil {
				return nil, err
			}
			return current, nil
		}
	}

	created := &model.Picture{}
	applyPicture(created, pic, fileName)
	if err := repos.Picture.Create(created); err != nil {
		return nil, err
	}
	return created, nil
}

func applyPicture(dst *model.Picture, pic *utils.NormalizedPicture, fileName string) {
	dst.FileName = fileName
	dst.Data = pic.Data
	dst.ContentType = pic.ContentType
	dst.Width = pic.Width
	dst.Height = pic.Height
}

func normalizeUpload(upload *PictureUpload) (*utils.NormalizedPicture, error) {
	pic, err := utils.NormalizePicture(upload.Data, upload.ContentType)
	if err != nil {
		if _, ok := common.AsServiceError(err); ok {
			return nil, err
		}
		log.Printf("❌ 头像编码失败: %v", err)
		return nil, common.NewInternalError("头像处理失败")
	}
	return pic, nil
}

// GetProfilePictureByUserID 返回当前用户的头像；未设置头像时返回 not_found。
func (s *Service) GetProfilePictureByUserID(userID uuid.UUID) (*model.Picture, error) {
	person, err := s.findPersonByUserID(userID)
	if err != nil {
		return nil, err
	}
	if person.ProfilePictureID == nil {
		return nil, common.NewNotFoundError("尚未上传头像")
	}
	picture, err := s.repos.Picture.FindByID(*person.ProfilePictureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("尚未上传头像")
		}
		return nil, common.NewInternalError("获取头像失败")
	}
	return picture, nil
}
