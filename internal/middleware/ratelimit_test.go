package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"blog-cms/internal/metrics"
)

func rateLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), rl.Middleware())
	router.GET("/api/v1/articles", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func requestFrom(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	req.RemoteAddr = ip + ":40000"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsBurst(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 3, CleanupInterval: time.Minute})
	defer rl.Stop()
	router := rateLimitedRouter(rl)

	for i := 0; i < 3; i++ {
		w := requestFrom(router, "10.0.0.1")
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}
}

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 0.5, Burst: 1, CleanupInterval: time.Minute})
	defer rl.Stop()
	router := rateLimitedRouter(rl)

	before := testutil.ToFloat64(metrics.HTTPRateLimited)

	require.Equal(t, http.StatusOK, requestFrom(router, "10.0.0.2").Code)
	w := requestFrom(router, "10.0.0.2")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), `"code":"RATE_LIMITED"`)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.HTTPRateLimited))
}

func TestRateLimiter_SeparateClients(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 0.1, Burst: 1, CleanupInterval: time.Minute})
	defer rl.Stop()
	router := rateLimitedRouter(rl)

	assert.Equal(t, http.StatusOK, requestFrom(router, "10.0.0.3").Code)
	assert.Equal(t, http.StatusOK, requestFrom(router, "10.0.0.4").Code)
	assert.Equal(t, http.StatusTooManyRequests, requestFrom(router, "10.0.0.3").Code)
	assert.Equal(t, 2, rl.ClientCount())
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1, CleanupInterval: time.Minute})
	defer rl.Stop()

	rl.limiterFor("10.0.0.5")
	rl.limiterFor("10.0.0.6")
	rl.mu.Lock()
	rl.limiters["10.0.0.5"].lastAccess = time.Now().Add(-3 * time.Minute)
	rl.mu.Unlock()

	rl.cleanup(time.Now())

	assert.Equal(t, 1, rl.ClientCount())
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1})
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func TestRetryAfterSeconds(t *testing.T) {
	tests := []struct {
		rate rate.Limit
		want int
	}{
		{rate: 20, want: 1},
		{rate: 1, want: 1},
		{rate: 0.5, want: 2},
		{rate: 0.3, want: 4},
		{rate: 0, want: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, retryAfterSeconds(tt.rate), "rate %v", tt.rate)
	}
}
