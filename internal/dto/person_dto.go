package dto

// PersonInfoForm 以 multipart 表单提交，头像字段 profile_picture 可选。
type PersonInfoForm struct {
	FirstName       string `form:"first_name" binding:"required"`
	LastName        string `form:"last_name" binding:"required"`
	PersonalCode    string `form:"personal_code" binding:"required"`
	PhoneNumber     string `form:"phone_number" binding:"required"`
	Email           string `form:"email" binding:"required"`
	City            string `form:"city" binding:"required"`
	Street          string `form:"street" binding:"required"`
	HouseNumber     string `form:"house_number" binding:"required"`
	ApartmentNumber string `form:"apartment_number"`
}

type UpdateFieldRequest struct {
	Value string `json:"value" binding:"required"`
}

type AddressRequest struct {
	City            string `json:"city" binding:"required"`
	Street          string `json:"street" binding:"required"`
	HouseNumber     string `json:"house_number" binding:"required"`
	ApartmentNumber string `json:"apartment_number"`
}

type AddressResponse struct {
	ID              string `json:"id"`
	City            string `json:"city"`
	Street          string `json:"street"`
	HouseNumber     string `json:"house_number"`
	ApartmentNumber string `json:"apartment_number"`
}

type PictureResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

type PersonResponse struct {
	ID             string           `json:"id"`
	UserID         string           `json:"user_id"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	PersonalCode   string           `json:"personal_code"`
	PhoneNumber    string           `json:"phone_number"`
	Email          string           `json:"email"`
	Address        *AddressResponse `json:"address"`
	ProfilePicture *PictureResponse `json:"profile_picture"`
}
