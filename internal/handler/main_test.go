package handler

import (
	"os"
	"testing"

	"project-registration-server/internal/config"
	"project-registration-server/internal/consts"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Set(config.Config{
		Server: config.ServerConfig{Mode: "test", MaxBodySizeMB: 2},
		JWT: config.JWTConfig{
			Secret:            "handler_test_secret",
			Issuer:            "project-registration-server",
			Audience:          "project-registration-client",
			ExpirationMinutes: 30,
		},
		Picture: config.PictureConfig{
			MaxSizeMB:         10,
			AllowedExtensions: ".jpg,.jpeg,.png,.webp,.bmp,.tiff",
			JPEGQuality:       90,
		},
		Security: config.SecurityConfig{PasswordAlgorithm: consts.PasswordAlgorithmHMACSHA512},
	})
	os.Exit(m.Run())
}
