package consts

const (
	// PasswordAlgorithmHMACSHA512 随机 128 字节密钥作为盐，存储 HMAC-SHA512(key, password)
	PasswordAlgorithmHMACSHA512 = "hmac-sha512"

	// PasswordAlgorithmArgon2id argon2id 派生，盐为随机 16 字节
	PasswordAlgorithmArgon2id = "argon2id"

	// PasswordAlgorithmBcrypt bcrypt 自带盐，salt 列留空
	PasswordAlgorithmBcrypt = "bcrypt"
)
