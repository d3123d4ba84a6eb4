package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"project-registration-server/internal/config"
	"project-registration-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter *rate.Limiter
	// lastSeen 最近一次访问的 UnixNano，清理协程并发读取
	lastSeen atomic.Int64
}

func (c *client) touch() {
	c.lastSeen.Store(time.Now().UnixNano())
}

func (c *client) idleFor() time.Duration {
	return time.Since(time.Unix(0, c.lastSeen.Load()))
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	c := &client{limiter: limiter}
	c.touch()
	i.ips.Store(ip, c)

	return limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.evictIdle(3 * time.Minute)
	}
}

// evictIdle 移除超过 maxIdle 未访问的 IP
func (i *IPRateLimiter) evictIdle(maxIdle time.Duration) {
	i.ips.Range(func(key, value interface{}) bool {
		if value.(*client).idleFor() > maxIdle {
			i.ips.Delete(key)
		}
		return true
	})
}

// tokenBucketScript 在 Redis 中原子地补充并消耗令牌。
// KEYS[1]=桶 key；ARGV: rps, burst, now(ms)。返回 1 表示放行。
var tokenBucketScript = redis.NewScript(`
local rps = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local state = redis.call("HMGET", KEYS[1], "tokens", "ts")
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil then
  tokens = burst
  ts = now
end
tokens = math.min(burst, tokens + (now - ts) / 1000 * rps)
local allowed = 0
if tokens >= 1 then
  tokens = tokens - 1
  allowed = 1
end
redis.call("HSET", KEYS[1], "tokens", tokens, "ts", now)
redis.call("PEXPIRE", KEYS[1], math.ceil(burst / rps * 1000) + 1000)
return allowed
`)

// allowByRedisRateLimit 使用 Redis 令牌桶判断是否放行；rps 或 burst 非正时视为不限流。
func allowByRedisRateLimit(rdb *redis.Client, scope, ip string, rps float64, burst int) (bool, error) {
	if rps <= 0 || burst <= 0 {
		return true, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	key := service.RedisKey("rate", scope, ip)
	res, err := tokenBucketScript.Run(ctx, rdb, []string{key},
		strconv.FormatFloat(rps, 'f', -1, 64), burst, time.Now().UnixMilli()).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// RateLimitMiddleware 按客户端 IP 限流；Redis 可用时多实例共享令牌桶，否则使用进程内限流器
func RateLimitMiddleware(scope string) gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := config.Get().RateLimit
		if !cfg.Enabled || cfg.AuthRPS <= 0 || cfg.AuthBurst <= 0 {
			c.Next()
			return
		}

		ip := c.ClientIP()

		if rdb := service.GetRedisClient(); rdb != nil {
			allowed, err := allowByRedisRateLimit(rdb, scope, ip, cfg.AuthRPS, cfg.AuthBurst)
			if err == nil {
				if !allowed {
					tooManyRequests(c)
					return
				}
				c.Next()
				return
			}
			log.Printf("⚠️ Redis 限流失败，回退内存限流: %v", err)
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(cfg.AuthRPS), cfg.AuthBurst)
		})

		l := limiter.getLimiter(ip)

		// 动态更新 limit 和 burst (如果配置发生变更)
		if l.Limit() != rate.Limit(cfg.AuthRPS) {
			l.SetLimit(rate.Limit(cfg.AuthRPS))
		}
		if l.Burst() != cfg.AuthBurst {
			l.SetBurst(cfg.AuthBurst)
		}

		if !l.Allow() {
			tooManyRequests(c)
			return
		}
		c.Next()
	}
}

func tooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
	c.Abort()
}
