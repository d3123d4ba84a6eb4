package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"project-registration-server/internal/consts"

	"github.com/spf13/viper"
)

// 用于管理应用配置

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

const insecureDevSecret = "project_registration_secret"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Picture   PictureConfig   `mapstructure:"picture"`
	Security  SecurityConfig  `mapstructure:"security"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Redis     RedisConfig     `mapstructure:"redis"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// MaxBodySizeMB 非上传接口的请求体上限
	MaxBodySizeMB int `mapstructure:"max_body_size_mb"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type JWTConfig struct {
	Secret            string `mapstructure:"secret"`
	Issuer            string `mapstructure:"issuer"`
	Audience          string `mapstructure:"audience"`
	ExpirationMinutes int    `mapstructure:"expiration_minutes"`
}

type PictureConfig struct {
	MaxSizeMB         int    `mapstructure:"max_size_mb"`
	AllowedExtensions string `mapstructure:"allowed_extensions"` // 逗号分隔
	JPEGQuality       int    `mapstructure:"jpeg_quality"`
	// MaxPixels 解码前按头部声明的宽x高拒绝超大图片
	MaxPixels int `mapstructure:"max_pixels"`
}

type SecurityConfig struct {
	PasswordAlgorithm string `mapstructure:"password_algorithm"`
}

type RateLimitConfig struct {
	Enabled   bool    `mapstructure:"enabled"`
	AuthRPS   float64 `mapstructure:"auth_rps"`
	AuthBurst int     `mapstructure:"auth_burst"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

// Set 直接替换当前配置快照，主要供测试使用。
func Set(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()
	c := cfg
	appConfig.Store(&c)
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceJWTSecretSafety()
	log.Println("✅ 配置加载成功")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 设置默认值
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_size_mb", 2)
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/registration.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "project_registration")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "project-registration-server")
	v.SetDefault("jwt.audience", "project-registration-client")
	v.SetDefault("jwt.expiration_minutes", 30)
	v.SetDefault("picture.max_size_mb", 10)
	v.SetDefault("picture.allowed_extensions", ".jpg,.jpeg,.png,.webp,.bmp,.tiff")
	v.SetDefault("picture.jpeg_quality", 90)
	v.SetDefault("picture.max_pixels", 40_000_000)
	v.SetDefault("security.password_algorithm", consts.PasswordAlgorithmHMACSHA512)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.auth_rps", 1)
	v.SetDefault("rate_limit.auth_burst", 10)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "project_registration")

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			log.Fatalf("❌ 读取配置文件失败: %v", err)
		}
	}

	// 配置环境变量覆盖
	// 规则：所有环境变量必须以 REGISTRY_ 开头
	// 例如：yaml 中的 server.port 对应环境变量 REGISTRY_SERVER_PORT
	v.SetEnvPrefix("REGISTRY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("❌ 配置解析失败: %v", err)
		return
	}

	if tempConfig.Server.Mode == "release" {
		if tempConfig.JWT.Secret == "" || tempConfig.JWT.Secret == insecureDevSecret {
			log.Println("❌ [安全严重错误] 生产模式(release)下必须设置安全的 JWT Secret！")
		}
	} else if tempConfig.JWT.Secret == "" {
		log.Println("⚠️ [开发模式警告] 未设置 JWT Secret，将使用默认不安全密钥进行开发")
		tempConfig.JWT.Secret = insecureDevSecret
	}

	switch tempConfig.Security.PasswordAlgorithm {
	case consts.PasswordAlgorithmHMACSHA512, consts.PasswordAlgorithmArgon2id, consts.PasswordAlgorithmBcrypt:
	default:
		log.Printf("⚠️ 未知的密码算法 %q，回退为 %s", tempConfig.Security.PasswordAlgorithm, consts.PasswordAlgorithmHMACSHA512)
		tempConfig.Security.PasswordAlgorithm = consts.PasswordAlgorithmHMACSHA512
	}

	appConfig.Store(&tempConfig)
}

func enforceJWTSecretSafety() {
	// 首次启动安全检查：如果是 release 模式，拦截不安全的 JWT Secret
	curr := Get()
	if curr.Server.Mode == "release" {
		if curr.JWT.Secret == "" || curr.JWT.Secret == insecureDevSecret {
			log.Fatal("❌ [安全严重错误] 生产模式(release)下必须设置安全的 JWT Secret！\n请设置环境变量 REGISTRY_JWT_SECRET 或在配置文件中指定 jwt.secret")
		}
	}
}
