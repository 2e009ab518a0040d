package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashbook/backend/internal/integration/adapters"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiter_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiter(client, 2, time.Minute, true)
	ctx := context.Background()

	assert.True(t, rl.Allow(ctx, "10.0.0.1"))
	assert.True(t, rl.Allow(ctx, "10.0.0.1"))
	assert.False(t, rl.Allow(ctx, "10.0.0.1"))
	assert.True(t, rl.Allow(ctx, "10.0.0.2"))

	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"10.0.0.1"))

	mr.FastForward(time.Minute + time.Second)
	assert.True(t, rl.Allow(ctx, "10.0.0.1"))
}

func TestRateLimiter_RedisWindowTTL(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(mr *miniredis.Miniredis, key string)
		hits    int
		advance time.Duration
		wantTTL time.Duration
	}{
		{
			name:    "first hit arms the window",
			prepare: func(*miniredis.Miniredis, string) {},
			hits:    1,
			wantTTL: time.Minute,
		},
		{
			name:    "later hits keep the running window",
			prepare: func(*miniredis.Miniredis, string) {},
			hits:    2,
			advance: 20 * time.Second,
			wantTTL: 40 * time.Second,
		},
		{
			name: "counter left without a ttl is re-armed",
			prepare: func(mr *miniredis.Miniredis, key string) {
				require.NoError(t, mr.Set(key, "7"))
			},
			hits:    1,
			wantTTL: time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr := miniredis.RunT(t)
			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			t.Cleanup(func() { _ = client.Close() })

			rl := NewRateLimiter(client, 10, time.Minute, true)
			ctx := context.Background()
			tt.prepare(mr, keyPrefix+"ip")

			for i := 0; i < tt.hits; i++ {
				if i > 0 {
					mr.FastForward(tt.advance)
				}
				rl.Allow(ctx, "ip")
			}
			assert.Equal(t, tt.wantTTL, mr.TTL(keyPrefix+"ip"))
		})
	}
}

func TestRateLimiter_MemoryEvictsExpiredEntries(t *testing.T) {
	rl := NewRateLimiter(nil, 1, time.Minute, true)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		assert.True(t, rl.Allow(context.Background(), ip))
	}
	assert.Len(t, rl.entries, 3)

	now = now.Add(2 * time.Minute)
	assert.True(t, rl.Allow(context.Background(), "10.0.0.4"))
	assert.Len(t, rl.entries, 1)
	assert.Contains(t, rl.entries, "10.0.0.4")
}

func TestRateLimiter_FallsBackToMemory(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	rl := NewRateLimiter(client, 1, time.Minute, true)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	ctx := context.Background()
	assert.True(t, rl.Allow(ctx, "ip"))
	assert.False(t, rl.Allow(ctx, "ip"))

	now = now.Add(2 * time.Minute)
	assert.True(t, rl.Allow(ctx, "ip"))

	now = now.Add(2 * time.Minute)
	rl.Cleanup()
	assert.Empty(t, rl.entries)
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(nil, 1, time.Minute, true)
	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		return w.Code
	}
	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())

	disabled := NewRateLimiter(nil, 1, time.Minute, false)
	r2 := gin.New()
	r2.POST("/login", disabled.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r2.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	tokens := adapters.NewTokenService("secret", time.Hour)
	userID := uuid.New()
	token, err := tokens.GenerateAccessToken(userID, "owner@example.com")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", NewAuthMiddleware(tokens).Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.String())
	})

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid token", "Bearer " + token.Token, http.StatusOK, userID.String()},
		{"missing header", "", http.StatusUnauthorized, "AUTH-040003"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "AUTH-040002"},
		{"invalid token", "Bearer nope", http.StatusUnauthorized, "AUTH-040002"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}
