package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blog-cms/internal/middleware"
)

// Router holds everything mounted by NewRouter. RateLimiter may be nil.
type Router struct {
	Health      *HealthHandler
	Articles    *ArticleHandler
	Authors     *AuthorHandler
	Categories  *CategoryHandler
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the Gin engine: probes and /metrics at the root, the
// API under APIPrefix. Rate limiting applies to the API only.
func NewRouter(r Router) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessLog())

	router.GET("/health", r.Health.Health)
	router.GET("/ready", r.Health.Ready)
	router.GET("/live", r.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group(APIPrefix)
	if r.RateLimiter != nil {
		v1.Use(r.RateLimiter.Middleware())
	}
	r.Articles.Register(v1)
	r.Authors.Register(v1)
	r.Categories.Register(v1)

	return router
}
