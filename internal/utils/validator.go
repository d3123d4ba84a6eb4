package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"project-registration-server/internal/config"
	"project-registration-server/internal/consts"
)

const maxUsernameLength = 50

// ValidateUsername 只检查非空与长度，格式规则不在服务端强制。
func ValidateUsername(username string) (bool, string) {
	if strings.TrimSpace(username) == "" {
		return false, "用户名不能为空"
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return false, fmt.Sprintf("用户名最长%d个字符", maxUsernameLength)
	}
	return true, ""
}

func ValidatePassword(password string) (bool, string) {
	if password == "" {
		return false, "密码不能为空"
	}
	return true, ""
}

// ValidateRequired 检查必填文本字段。
func ValidateRequired(name, value string) (bool, string) {
	if strings.TrimSpace(value) == "" {
		return false, name + "不能为空"
	}
	return true, ""
}

// ValidatePictureFile 检查上传头像的大小与扩展名，真实格式由 NormalizePicture 按内容判定。
func ValidatePictureFile(fileName string, size int64) (bool, string) {
	cfg := config.Get().Picture
	maxSize := int64(cfg.MaxSizeMB) * 1024 * 1024
	if maxSize > 0 && size > maxSize {
		return false, fmt.Sprintf("图片大小不能超过%dMB", cfg.MaxSizeMB)
	}
	if size <= 0 {
		return false, "图片内容为空"
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return false, "图片文件缺少扩展名"
	}
	for _, allowed := range strings.Split(cfg.AllowedExtensions, ",") {
		if strings.EqualFold(strings.TrimSpace(allowed), ext) {
			return true, ""
		}
	}
	return false, "不支持的图片扩展名: " + ext
}

// NormalizeRole 将角色规范为首字母大写其余小写，并校验是否为已知角色。
func NormalizeRole(role string) (string, bool) {
	role = strings.TrimSpace(role)
	if role == "" {
		return "", false
	}
	normalized := strings.ToUpper(role[:1]) + strings.ToLower(role[1:])
	switch normalized {
	case consts.RoleUser, consts.RoleAdmin:
		return normalized, true
	default:
		return normalized, false
	}
}
