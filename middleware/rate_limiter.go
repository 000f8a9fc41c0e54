package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var rdb *redis.Client

// RateLimitConfig is one throttling rule.
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
	Scope       string // "ip" or "user"
}

// Rules keyed by endpoint class. Auth endpoints are IP-scoped because the
// caller is not authenticated yet; write endpoints are user-scoped.
var rateLimitRules = map[string]RateLimitConfig{
	"auth_register": {
		MaxRequests: 3,
		Window:      time.Hour,
		Scope:       "ip",
	},
	"auth_login": {
		MaxRequests: 10,
		Window:      15 * time.Minute,
		Scope:       "ip",
	},
	"auth_verify_otp": {
		MaxRequests: 5,
		Window:      10 * time.Minute,
		Scope:       "ip",
	},
	"auth_refresh": {
		MaxRequests: 30,
		Window:      time.Minute,
		Scope:       "ip",
	},
	"booking_create": {
		MaxRequests: 10,
		Window:      time.Minute,
		Scope:       "user",
	},
	"review_create": {
		MaxRequests: 5,
		Window:      time.Minute,
		Scope:       "user",
	},
	"public_browse": {
		MaxRequests: 120,
		Window:      time.Minute,
		Scope:       "ip",
	},
	"default": {
		MaxRequests: 60,
		Window:      time.Minute,
		Scope:       "ip",
	},
}

func InitRateLimiter(redisClient *redis.Client) {
	rdb = redisClient
}

func getRateLimitRule(path, method string) RateLimitConfig {
	switch {
	case strings.Contains(path, "/auth/register"):
		return rateLimitRules["auth_register"]
	case strings.Contains(path, "/auth/login"):
		return rateLimitRules["auth_login"]
	case strings.Contains(path, "/auth/verify-otp"):
		return rateLimitRules["auth_verify_otp"]
	case strings.Contains(path, "/auth/refresh"):
		return rateLimitRules["auth_refresh"]
	case strings.Contains(path, "/bookings") && method == http.MethodPost:
		return rateLimitRules["booking_create"]
	case strings.Contains(path, "/reviews") && method == http.MethodPost:
		return rateLimitRules["review_create"]
	case (strings.Contains(path, "/tutors") || strings.Contains(path, "/categories")) &&
		method == http.MethodGet:
		return rateLimitRules["public_browse"]
	default:
		return rateLimitRules["default"]
	}
}

func getIdentifier(c *gin.Context, scope string) string {
	if scope == "user" {
		if userUUID, exists := c.Get("userUUID"); exists {
			return fmt.Sprintf("user:%v", userUUID)
		}
	}
	return fmt.Sprintf("ip:%s", c.ClientIP())
}

// slidingWindowRateLimit counts requests in a Redis sorted set. The script
// runs atomically so concurrent requests cannot slip past the limit.
func slidingWindowRateLimit(ctx context.Context, key string, config RateLimitConfig) (bool, int, error) {
	now := time.Now().UnixMilli()
	windowStart := now - config.Window.Milliseconds()

	redisKey := fmt.Sprintf("rate:sw:%s", key)

	luaScript := `
	local key = KEYS[1]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local max_requests = tonumber(ARGV[3])
	local window_seconds = tonumber(ARGV[4])

	redis.call('ZREMRANGEBYSCORE', key, 0, window_start)

	local current = redis.call('ZCARD', key)
	if current >= max_requests then
		return {0, 0}
	end

	redis.call('ZADD', key, now, now)
	redis.call('EXPIRE', key, window_seconds + 60)

	local remaining = max_requests - current - 1
	if remaining < 0 then remaining = 0 end

	return {1, remaining}
	`

	result, err := rdb.Eval(ctx, luaScript, []string{redisKey},
		now, windowStart, config.MaxRequests, int(config.Window.Seconds())).Result()
	if err != nil {
		return false, 0, err
	}

	results := result.([]interface{})
	allowed := results[0].(int64) == 1
	remaining := int(results[1].(int64))

	return allowed, remaining, nil
}

// RateLimiter throttles per endpoint class. Redis failures let the request
// through rather than taking the API down with the cache.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		rule := getRateLimitRule(c.Request.URL.Path, c.Request.Method)
		identifier := getIdentifier(c, rule.Scope)
		fullKey := fmt.Sprintf("%s:%s:%s", c.Request.Method, c.FullPath(), identifier)

		allowed, remaining, err := slidingWindowRateLimit(c.Request.Context(), fullKey, rule)
		if err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rule.MaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(rule.Window).Unix()))

		if !allowed {
			log.Warn().
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("identifier", identifier).
				Msg("rate limit exceeded")

			c.Header("Retry-After", fmt.Sprintf("%d", int(rule.Window.Seconds())))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"error":       fmt.Sprintf("Too many requests, please try again in %v", rule.Window),
				"retry_after": int(rule.Window.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
