package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/logger"
	"blog-cms/internal/middleware"
)

type capturedIDs struct {
	gin     string
	context string
}

func requestIDRouter(captured *capturedIDs) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/api/v1/articles", func(c *gin.Context) {
		captured.gin = middleware.GetRequestID(c)
		captured.context = logger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	var captured capturedIDs
	router := requestIDRouter(&captured)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil))

	require.Equal(t, http.StatusOK, w.Code)
	header := w.Header().Get(middleware.RequestIDHeader)
	_, err := uuid.Parse(header)
	assert.NoError(t, err, "generated id should be a UUID")
	assert.Equal(t, header, captured.gin)
	assert.Equal(t, header, captured.context, "request context carries the same id")
}

func TestRequestID_UsesClientProvidedID(t *testing.T) {
	var captured capturedIDs
	router := requestIDRouter(&captured)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-provided-id-12345")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "client-provided-id-12345", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "client-provided-id-12345", captured.context)
}

func TestRequestID_MultipleRequests_DifferentIDs(t *testing.T) {
	var captured capturedIDs
	router := requestIDRouter(&captured)

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil))
		require.NotEmpty(t, captured.gin)
		seen[captured.gin] = true
	}
	assert.Len(t, seen, 3)
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "not set"},
		{name: "string", value: "test-request-id", want: "test-request-id"},
		{name: "wrong type", value: 12345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			if tt.value != nil {
				c.Set(middleware.RequestIDKey, tt.value)
			}
			assert.Equal(t, tt.want, middleware.GetRequestID(c))
		})
	}
}
