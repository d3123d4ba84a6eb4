package utils

import (
	"encoding/base64"
	"testing"

	"project-registration-server/internal/consts"
)

func TestPasswordHashers_RoundTrip(t *testing.T) {
	algorithms := []string{
		consts.PasswordAlgorithmHMACSHA512,
		consts.PasswordAlgorithmArgon2id,
		consts.PasswordAlgorithmBcrypt,
	}
	for _, alg := range algorithms {
		t.Run(alg, func(t *testing.T) {
			hash, salt, err := HashPassword(alg, "secret-pass-1")
			if err != nil {
				t.Fatalf("HashPassword: %v", err)
			}
			if hash == "" {
				t.Fatalf("hash 不应为空")
			}
			if !VerifyPassword(alg, "secret-pass-1", hash, salt) {
				t.Fatalf("正确口令应通过校验")
			}
			if VerifyPassword(alg, "secret-pass-2", hash, salt) {
				t.Fatalf("错误口令不应通过校验")
			}
		})
	}
}

// 测试内容：HMAC-SHA512 的盐是 128 字节随机密钥，两次摘要互不相同。
func TestHMACSHA512_SaltIsFreshKey(t *testing.T) {
	h1, s1, err := HashPassword(consts.PasswordAlgorithmHMACSHA512, "pw")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, s2, _ := HashPassword(consts.PasswordAlgorithmHMACSHA512, "pw")

	key, err := base64.StdEncoding.DecodeString(s1)
	if err != nil || len(key) != 128 {
		t.Fatalf("期望 128 字节盐，实际 %d (%v)", len(key), err)
	}
	raw, _ := base64.StdEncoding.DecodeString(h1)
	if len(raw) != 64 {
		t.Fatalf("期望 64 字节摘要，实际 %d", len(raw))
	}
	if h1 == h2 || s1 == s2 {
		t.Fatalf("相同口令的两次摘要不应相同")
	}
}

func TestVerifyPassword_RejectsMismatchedAlgorithmOrBadSalt(t *testing.T) {
	hash, salt, _ := HashPassword(consts.PasswordAlgorithmArgon2id, "pw")
	if VerifyPassword(consts.PasswordAlgorithmHMACSHA512, "pw", hash, salt) {
		t.Fatalf("算法不一致时不应通过")
	}
	if VerifyPassword(consts.PasswordAlgorithmHMACSHA512, "pw", hash, "%%%") {
		t.Fatalf("非法盐不应通过")
	}
	if VerifyPassword("md5", "pw", hash, salt) {
		t.Fatalf("未知算法不应通过")
	}
	if _, err := NewPasswordHasher("md5"); err == nil {
		t.Fatalf("未知算法应返回错误")
	}
}
