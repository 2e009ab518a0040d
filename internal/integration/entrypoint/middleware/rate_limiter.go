// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/cashbook/backend/internal/domain/error"
	"github.com/cashbook/backend/internal/integration/entrypoint/dto"
)

const (
	// DefaultMaxAttempts is the default number of allowed attempts per window.
	DefaultMaxAttempts = 5
	// DefaultWindow is the default time window for rate limiting.
	DefaultWindow = 1 * time.Minute

	keyPrefix = "cashbook:ratelimit:"
)

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// RateLimiter provides IP-based rate limiting. Counters live in Redis when a
// client is configured so that several API instances share them; otherwise,
// and whenever Redis fails, an in-process window is used.
type RateLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
	enabled     bool

	mu        sync.Mutex
	entries   map[string]*rateLimitEntry
	nextSweep time.Time
	now       func() time.Time
}

// NewRateLimiter creates a new rate limiter. client may be nil.
func NewRateLimiter(client *redis.Client, maxAttempts int, window time.Duration, enabled bool) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &RateLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
		enabled:     enabled,
		entries:     make(map[string]*rateLimitEntry),
		now:         time.Now,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.Allow(c.Request.Context(), clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Allow reports whether another request from key fits in the current window.
func (rl *RateLimiter) Allow(ctx context.Context, key string) bool {
	if rl.client != nil {
		allowed, err := rl.allowRedis(ctx, key)
		if err == nil {
			return allowed
		}
		slog.Warn("Rate limiter falling back to memory", "error", err)
	}
	return rl.allowMemory(key)
}

// allowRedis counts the hit and arms the window in one MULTI/EXEC, so a key
// never outlives its window without a TTL.
func (rl *RateLimiter) allowRedis(ctx context.Context, key string) (bool, error) {
	redisKey := keyPrefix + key

	var count *redis.IntCmd
	_, err := rl.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		count = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, rl.window)
		return nil
	})
	if err != nil {
		return false, err
	}
	return count.Val() <= int64(rl.maxAttempts), nil
}

func (rl *RateLimiter) allowMemory(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.After(rl.nextSweep) {
		rl.evictExpired(now)
		rl.nextSweep = now.Add(rl.window)
	}

	entry, exists := rl.entries[key]
	if !exists || now.After(entry.resetTime) {
		rl.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(rl.window),
		}
		return true
	}

	if entry.attempts < rl.maxAttempts {
		entry.attempts++
		return true
	}
	return false
}

// Cleanup removes expired in-memory entries. allowMemory also sweeps once
// per window.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.evictExpired(rl.now())
}

// evictExpired must be called with mu held.
func (rl *RateLimiter) evictExpired(now time.Time) {
	for key, entry := range rl.entries {
		if now.After(entry.resetTime) {
			delete(rl.entries, key)
		}
	}
}
