package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/metrics"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Pinger checks a dependency. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	db    Pinger
	stats metrics.PoolStatsProvider
}

// NewHealthHandler creates a new HealthHandler. stats may be nil.
func NewHealthHandler(db Pinger, stats metrics.PoolStatsProvider) *HealthHandler {
	return &HealthHandler{db: db, stats: stats}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

// Health handles GET /health - comprehensive health check.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	if h.stats != nil {
		metrics.LogPoolStats(ctx, h.stats)
	}

	services := map[string]string{"database": "healthy"}
	if err := h.db.Ping(ctx); err != nil {
		services["database"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  Version,
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
