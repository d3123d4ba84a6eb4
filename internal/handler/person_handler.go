package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"project-registration-server/internal/common"
	"project-registration-server/internal/consts"
	"project-registration-server/internal/dto"
	"project-registration-server/internal/service"
	"project-registration-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AddPersonInfo 先做唯一性检查，再写入个人信息、地址与可选头像
func (h *Handler) AddPersonInfo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var form dto.PersonInfoForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	upload, err := readOptionalUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 已有个人信息时直接拒绝，避免自身数据被误报为唯一性冲突
	if _, err := h.service.PersonIDByUserID(userID); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "已填写个人信息"})
		return
	} else if !common.IsErrorCode(err, common.ErrorCodeNotFound) {
		WriteServiceError(c, err, "获取个人信息失败")
		return
	}

	if err := h.service.CheckPersonInfoUnique(&form.PersonalCode, &form.PhoneNumber, &form.Email); err != nil {
		WriteServiceError(c, err, "唯一性检查失败")
		return
	}

	draft := service.PersonDraft{
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		PersonalCode: form.PersonalCode,
		PhoneNumber:  form.PhoneNumber,
		Email:        form.Email,
		Address: service.AddressDraft{
			City:            form.City,
			Street:          form.Street,
			HouseNumber:     form.HouseNumber,
			ApartmentNumber: form.ApartmentNumber,
		},
	}
	added, err := h.service.AddPersonInfo(userID, draft, upload)
	if err != nil {
		WriteServiceError(c, err, "保存个人信息失败")
		return
	}
	if !added {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户不存在或已填写个人信息"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "个人信息已保存"})
}

func (h *Handler) GetPersonInfo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	detail, err := h.service.GetPersonInfoByUserID(userID)
	if err != nil {
		WriteServiceError(c, err, "获取个人信息失败")
		return
	}
	c.JSON(http.StatusOK, toPersonResponse(detail))
}

// GetProfilePicture 直接返回头像 JPEG 二进制
func (h *Handler) GetProfilePicture(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	picture, err := h.service.GetProfilePictureByUserID(userID)
	if err != nil {
		WriteServiceError(c, err, "获取头像失败")
		return
	}
	c.Data(http.StatusOK, picture.ContentType, picture.Data)
}

// UpdateField 返回更新单个字段的处理函数，唯一字段先排除自身做冲突检查
func (h *Handler) UpdateField(field consts.PersonField) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req dto.UpdateFieldRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
			return
		}

		personID, err := h.service.PersonIDByUserID(userID)
		if err != nil {
			WriteServiceError(c, err, "获取个人信息失败")
			return
		}

		if field.IsUnique() {
			if err := h.service.CheckPersonFieldUnique(personID, field, req.Value); err != nil {
				WriteServiceError(c, err, "唯一性检查失败")
				return
			}
		}

		updated, err := h.service.UpdateField(personID, field, req.Value)
		if err != nil {
			WriteServiceError(c, err, "更新失败")
			return
		}
		if !updated {
			c.JSON(http.StatusNotFound, gin.H{"error": "个人信息不存在"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "更新成功"})
	}
}

func (h *Handler) UpdateAddress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	personID, err := h.service.PersonIDByUserID(userID)
	if err != nil {
		WriteServiceError(c, err, "获取个人信息失败")
		return
	}

	updated, err := h.service.UpdateAddress(personID, service.AddressDraft{
		City:            req.City,
		Street:          req.Street,
		HouseNumber:     req.HouseNumber,
		ApartmentNumber: req.ApartmentNumber,
	})
	if err != nil {
		WriteServiceError(c, err, "更新地址失败")
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "个人信息不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "地址已更新"})
}

func (h *Handler) UpdateProfilePicture(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	upload, err := readOptionalUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if upload == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请选择要上传的头像"})
		return
	}

	personID, err := h.service.PersonIDByUserID(userID)
	if err != nil {
		WriteServiceError(c, err, "获取个人信息失败")
		return
	}

	updated, err := h.service.UpdateProfilePicture(personID, *upload)
	if err != nil {
		WriteServiceError(c, err, "更新头像失败")
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "个人信息不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "头像已更新"})
}

// readOptionalUpload 读取 profile_picture 表单文件；未提交时返回 nil, nil
func readOptionalUpload(c *gin.Context) (*service.PictureUpload, error) {
	fileHeader, err := c.FormFile(consts.PictureFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, errors.New("读取上传文件失败")
	}
	return readUpload(fileHeader)
}

func readUpload(fileHeader *multipart.FileHeader) (*service.PictureUpload, error) {
	if ok, msg := utils.ValidatePictureFile(fileHeader.Filename, fileHeader.Size); !ok {
		return nil, errors.New(msg)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.New("读取上传文件失败")
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("读取上传文件失败")
	}

	return &service.PictureUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func toPersonResponse(detail *service.PersonDetail) dto.PersonResponse {
	p := detail.Person
	resp := dto.PersonResponse{
		ID:           p.ID.String(),
		UserID:       p.UserID.String(),
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		PersonalCode: p.PersonalCode,
		PhoneNumber:  p.PhoneNumber,
		Email:        p.Email,
	}
	if a := detail.Address; a != nil {
		resp.Address = &dto.AddressResponse{
			ID:              a.ID.String(),
			City:            a.City,
			Street:          a.Street,
			HouseNumber:     a.HouseNumber,
			ApartmentNumber: a.ApartmentNumber,
		}
	}
	if pic := detail.Picture; pic != nil {
		resp.ProfilePicture = &dto.PictureResponse{
			ID:          pic.ID.String(),
			FileName:    pic.FileName,
			ContentType: pic.ContentType,
			Width:       pic.Width,
			Height:      pic.Height,
		}
	}
	return resp
}
