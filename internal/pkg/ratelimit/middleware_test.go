package ratelimit

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func limitedRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(limiter))
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return r
}

func TestMiddlewareAllowsUnderLimit(t *testing.T) {
	r := limitedRouter(New(2, time.Minute))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code)
	}
}

func TestMiddlewareRejectsOverLimit(t *testing.T) {
	r := limitedRouter(New(0, time.Minute)) // limit 0 -> always deny

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 429, w.Code)
	require.NotEmpty(t, w.Header().Get("Retry-After"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Rate limit exceeded. Try again later.", body["error"])
	require.Contains(t, body, "retry_after")
	require.Contains(t, body, "reset_time")
}

func TestMiddlewareRemainingHeaderIsDecimal(t *testing.T) {
	r := limitedRouter(New(50, time.Minute))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Equal(t, "50", w.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "49", w.Header().Get("X-RateLimit-Remaining"))
}

func TestCleanupDropsExpiredKeys(t *testing.T) {
	lim := New(5, 30*time.Millisecond)

	require.True(t, lim.Allow("ip-1"))
	require.True(t, lim.Allow("ip-2"))
	require.Len(t, lim.requests, 2)

	time.Sleep(40 * time.Millisecond)
	lim.Cleanup()
	require.Empty(t, lim.requests)
}

func TestLimiterWindowExpiry(t *testing.T) {
	lim := New(1, 50*time.Millisecond)

	require.True(t, lim.Allow("ip"))
	require.False(t, lim.Allow("ip"))

	time.Sleep(60 * time.Millisecond)
	require.True(t, lim.Allow("ip"))
}
