package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/metrics"
	"jobboard-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis (default: "rl:ip:")
	KeyPrefix string
	// Whether to fail closed (reject) when Redis errors
	FailClosed bool
	// Optional; counts rejected requests
	Metrics *metrics.Collector
	// Optional; returns the shared Redis client or nil. Defaults to redis.Client.
	Redis func() *goredis.Client
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

func clientIPKey(c *gin.Context) string {
	return c.ClientIP()
}

// DefaultRateLimitConfig returns the global API limit
func DefaultRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		KeyFunc:   clientIPKey,
	}
}

// LoginRateLimitConfig returns strict config specifically for credential endpoints
func LoginRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:login:",
		FailClosed: true,
		KeyFunc:    clientIPKey,
	}
}

// keyedLimiter is the in-memory token bucket used when Redis is not available.
type keyedLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

type memoryLimiter struct {
	mu       sync.Mutex
	limiters map[string]*keyedLimiter
	every    rate.Limit
	burst    int
	ttl      time.Duration
	lastGC   time.Time
}

func newMemoryLimiter(limit int, window time.Duration) *memoryLimiter {
	if limit < 1 {
		limit = 1
	}
	return &memoryLimiter{
		limiters: make(map[string]*keyedLimiter),
		every:    rate.Limit(float64(limit) / window.Seconds()),
		burst:    limit,
		ttl:      2 * window,
		lastGC:   time.Now(),
	}
}

// allow reports whether key may proceed and how many tokens remain.
func (m *memoryLimiter) allow(key string, now time.Time) (bool, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastGC) > m.ttl {
		for k, kl := range m.limiters {
			if now.Sub(kl.lastAccess) > m.ttl {
				delete(m.limiters, k)
			}
		}
		m.lastGC = now
	}

	kl, ok := m.limiters[key]
	if !ok {
		kl = &keyedLimiter{limiter: rate.NewLimiter(m.every, m.burst)}
		m.limiters[key] = kl
	}
	kl.lastAccess = now

	allowed := kl.limiter.AllowN(now, 1)
	remaining := int(math.Floor(kl.limiter.TokensAt(now)))
	if remaining < 0 {
		remaining = 0
	}
	return allowed, remaining
}

func (m *memoryLimiter) retryAfter() int {
	secs := int(math.Ceil(1.0 / float64(m.every)))
	if secs < 1 {
		secs = 1
	}
	return secs
}

// RateLimitMiddleware creates a rate limiting middleware with the given config
// Uses Redis when available, falls back to an in-memory token bucket when not
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = clientIPKey
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	if config.Redis == nil {
		config.Redis = redis.Client
	}
	fallback := newMemoryLimiter(config.Limit, config.Window)

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))

		if client := config.Redis(); client != nil {
			count, resetAt, err := checkRateLimitRedis(c.Request.Context(), client, fullKey, config)
			if err == nil {
				if count > config.Limit {
					retryAfter := int(time.Until(resetAt).Seconds())
					if retryAfter < 1 {
						retryAfter = 1
					}
					c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
					rejectRateLimited(c, config, retryAfter)
					return
				}
				c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
				c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))
				c.Next()
				return
			}

			logger.Get().Warn().Err(err).Str("limiter", config.KeyPrefix).Msg("redis rate limit check failed")
			if config.FailClosed {
				response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
				c.Abort()
				return
			}
		}

		allowed, remaining := fallback.allow(fullKey, now)
		if !allowed {
			rejectRateLimited(c, config, fallback.retryAfter())
			return
		}
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Next()
	}
}

func rejectRateLimited(c *gin.Context, config RateLimitConfig, retryAfter int) {
	c.Header("X-RateLimit-Remaining", "0")
	c.Header("Retry-After", strconv.Itoa(retryAfter))

	config.Metrics.RecordRateLimited(config.KeyPrefix)
	logger.Get().Warn().
		Str("client_ip", c.ClientIP()).
		Str("path", c.FullPath()).
		Str("limiter", config.KeyPrefix).
		Str("request_id", c.GetString(string(domain.KeyRequestID))).
		Msg("rate limit exceeded")

	response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
	c.Abort()
}

// checkRateLimitRedis checks rate limit using Redis with atomic Lua script
func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())

	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	// Parse result [count, ttl]
	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}
