package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/logger"
	"blog-cms/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/api/v1/articles/:id", func(c *gin.Context) {
			if c.Param("id") == "missing" {
				c.JSON(http.StatusNotFound, gin.H{"code": "ARTICLE_NOT_FOUND"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
		})
		router.POST("/api/v1/articles", func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"id": "new"})
		})
		router.GET("/metrics", func(c *gin.Context) {
			c.String(http.StatusOK, "metrics data")
		})
		return router
	}

	tests := []struct {
		name   string
		method string
		target string
		labels []string
		status int
	}{
		{name: "labels by route template", method: http.MethodGet, target: "/api/v1/articles/abc", labels: []string{"GET", "/api/v1/articles/:id", "200"}, status: http.StatusOK},
		{name: "records error status", method: http.MethodGet, target: "/api/v1/articles/missing", labels: []string{"GET", "/api/v1/articles/:id", "404"}, status: http.StatusNotFound},
		{name: "records POST", method: http.MethodPost, target: "/api/v1/articles", labels: []string{"POST", "/api/v1/articles", "201"}, status: http.StatusCreated},
		{name: "unknown route", method: http.MethodGet, target: "/nope", labels: []string{"GET", unmatchedPath, "404"}, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter()
			counter := metrics.HTTPRequestsTotal.WithLabelValues(tt.labels...)
			initial := testutil.ToFloat64(counter)
			initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, initial+1, testutil.ToFloat64(counter))
			assert.Equal(t, initialInFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
		})
	}

	t.Run("skips metrics endpoint", func(t *testing.T) {
		router := newRouter()
		counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics", "200")
		initial := testutil.ToFloat64(counter)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, initial, testutil.ToFloat64(counter))
	})
}

func TestAccessLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	previous := logger.GetLogger()
	logger.SetLogger(logger.New(&buf, slog.LevelDebug))
	t.Cleanup(func() { logger.SetLogger(previous) })

	router := gin.New()
	router.Use(RequestID(), AccessLog())
	router.GET("/api/v1/authors", func(c *gin.Context) {
		c.Status(http.StatusServiceUnavailable)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/authors", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "req-7", entry["request_id"])
	assert.Equal(t, "/api/v1/authors", entry["path"])
	assert.EqualValues(t, http.StatusServiceUnavailable, entry["status"])
}
