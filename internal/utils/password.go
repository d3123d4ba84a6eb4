package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"project-registration-server/internal/consts"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	hmacKeySize     = 128
	argon2SaltSize  = 16
	argon2Time      = 1
	argon2MemoryKiB = 64 * 1024
	argon2Threads   = 4
	argon2KeyLen    = 32
)

// PasswordHasher 生成与校验口令摘要。hash 与 salt 均为可直接入库的字符串。
type PasswordHasher interface {
	Hash(password string) (hash string, salt string, err error)
	Verify(password, hash, salt string) bool
}

// NewPasswordHasher 按算法名返回对应实现，未知算法返回错误。
func NewPasswordHasher(algorithm string) (PasswordHasher, error) {
	switch algorithm {
	case consts.PasswordAlgorithmHMACSHA512, "":
		return hmacSHA512Hasher{}, nil
	case consts.PasswordAlgorithmArgon2id:
		return argon2idHasher{}, nil
	case consts.PasswordAlgorithmBcrypt:
		return bcryptHasher{}, nil
	default:
		return nil, fmt.Errorf("unsupported password algorithm: %s", algorithm)
	}
}

// HashPassword 使用指定算法和新生成的随机盐计算摘要。
func HashPassword(algorithm, password string) (string, string, error) {
	h, err := NewPasswordHasher(algorithm)
	if err != nil {
		return "", "", err
	}
	return h.Hash(password)
}

// VerifyPassword 使用入库时的算法与盐重新计算并做常量时间比较。
func VerifyPassword(algorithm, password, hash, salt string) bool {
	h, err := NewPasswordHasher(algorithm)
	if err != nil {
		return false
	}
	return h.Verify(password, hash, salt)
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// hmacSHA512Hasher 以 128 字节随机密钥作为盐，对口令做 HMAC-SHA512。
type hmacSHA512Hasher struct{}

func (hmacSHA512Hasher) Hash(password string) (string, string, error) {
	key, err := randomBytes(hmacKeySize)
	if err != nil {
		return "", "", err
	}
	return base64.StdEncoding.EncodeToString(hmacSHA512(key, password)), base64.StdEncoding.EncodeToString(key), nil
}

func (hmacSHA512Hasher) Verify(password, hash, salt string) bool {
	key, err := base64.StdEncoding.DecodeString(salt)
	if err != nil || len(key) == 0 {
		return false
	}
	expected, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return false
	}
	return hmac.Equal(hmacSHA512(key, password), expected)
}

func hmacSHA512(key []byte, password string) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}

type argon2idHasher struct{}

func (argon2idHasher) Hash(password string) (string, string, error) {
	salt, err := randomBytes(argon2SaltSize)
	if err != nil {
		return "", "", err
	}
	key := argon2.IDKey([]byte(password), salt, argon2Time, argon2MemoryKiB, argon2Threads, argon2KeyLen)
	return base64.StdEncoding.EncodeToString(key), base64.StdEncoding.EncodeToString(salt), nil
}

func (argon2idHasher) Verify(password, hash, salt string) bool {
	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil || len(rawSalt) == 0 {
		return false
	}
	expected, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return false
	}
	key := argon2.IDKey([]byte(password), rawSalt, argon2Time, argon2MemoryKiB, argon2Threads, argon2KeyLen)
	return subtle.ConstantTimeCompare(key, expected) == 1
}

// bcryptHasher 的盐内嵌在摘要里，salt 列留空。
type bcryptHasher struct{}

var errPasswordTooLong = errors.New("password exceeds 72 bytes")

func (bcryptHasher) Hash(password string) (string, string, error) {
	if len(password) > 72 {
		return "", "", errPasswordTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	return string(hashed), "", nil
}

func (bcryptHasher) Verify(password, hash, _ string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
