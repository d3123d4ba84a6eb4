package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"project-registration-server/internal/consts"
	"project-registration-server/internal/repository"
	"project-registration-server/internal/service"
	"project-registration-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// existenceCache 缓存用户是否仍存在，减少数据库查询
	// Key: userID (uuid.UUID), Value: cachedExistence
	existenceCache sync.Map
)

const existenceCacheTTL = 1 * time.Minute

type cachedExistence struct {
	Exists    bool
	ExpiresAt time.Time
}

func existenceRedisKey(userID uuid.UUID) string {
	return service.RedisKey("auth", "user_exists", userID.String())
}

// ClearUserExistenceCache 清除指定用户的存在性缓存，删除用户后调用
func ClearUserExistenceCache(userID uuid.UUID) {
	existenceCache.Delete(userID)

	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = redisClient.Del(ctx, existenceRedisKey(userID)).Err()
	}
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "需要认证才能访问"})
			c.Abort()
			return
		}

		// 检查格式是否为 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 格式错误"})
			c.Abort()
			return
		}

		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 无效或已过期"})
			c.Abort()
			return
		}

		c.Set("id", claims.ID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// UserExistenceCheck 拒绝已被删除用户仍持有的令牌
func UserExistenceCheck(users repository.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("id")
		uid, ok := value.(uuid.UUID)
		if !exists || !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
			c.Abort()
			return
		}

		found, known := lookupExistence(uid)
		if !known {
			_, err := users.FindByID(uid)
			switch {
			case err == nil:
				found = true
			case errors.Is(err, gorm.ErrRecordNotFound):
				found = false
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "获取用户信息失败"})
				c.Abort()
				return
			}
			storeExistence(uid, found)
		}

		if !found {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "用户不存在"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func lookupExistence(uid uuid.UUID) (bool, bool) {
	// 优先从 Redis 读取
	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if v, err := redisClient.Get(ctx, existenceRedisKey(uid)).Result(); err == nil {
			found := v == "1"
			existenceCache.Store(uid, cachedExistence{Exists: found, ExpiresAt: time.Now().Add(existenceCacheTTL)})
			return found, true
		}
	}

	// Redis 未命中或不可用时，回退本地内存缓存
	if val, ok := existenceCache.Load(uid); ok {
		if cached, typeOk := val.(cachedExistence); typeOk {
			if time.Now().Before(cached.ExpiresAt) {
				return cached.Exists, true
			}
			existenceCache.Delete(uid)
		}
	}
	return false, false
}

func storeExistence(uid uuid.UUID, found bool) {
	existenceCache.Store(uid, cachedExistence{Exists: found, ExpiresAt: time.Now().Add(existenceCacheTTL)})

	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		v := "0"
		if found {
			v = "1"
		}
		_ = redisClient.Set(ctx, existenceRedisKey(uid), v, existenceCacheTTL).Err()
	}
}

func AdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exist := c.Get("role")
		role, ok := value.(string)
		if !exist || !ok || role != consts.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "需要管理员权限才能访问"})
			c.Abort()
			return
		}
		c.Next()
	}
}
