package router

import (
	"project-registration-server/internal/consts"
	"project-registration-server/internal/handler"
	"project-registration-server/internal/middleware"
	"project-registration-server/internal/repository"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, h *handler.Handler, users repository.UserStore) {
	userGroup := api.Group("/user")
	userGroup.Use(middleware.JWTAuth())
	userGroup.Use(middleware.UserExistenceCheck(users))

	uploadBodyLimit := middleware.UploadBodyLimitMiddleware()

	person := userGroup.Group("/person")
	person.POST("", uploadBodyLimit, h.AddPersonInfo)
	person.GET("", h.GetPersonInfo)
	person.GET("/picture", h.GetProfilePicture)

	person.PUT("/first-name", h.UpdateField(consts.PersonFieldFirstName))
	person.PUT("/last-name", h.UpdateField(consts.PersonFieldLastName))
	person.PUT("/personal-code", h.UpdateField(consts.PersonFieldPersonalCode))
	person.PUT("/phone-number", h.UpdateField(consts.PersonFieldPhoneNumber))
	person.PUT("/email", h.UpdateField(consts.PersonFieldEmail))
	person.PUT("/address", h.UpdateAddress)
	person.PUT("/picture", uploadBodyLimit, h.UpdateProfilePicture)
}
