package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Atlas00000/sharevoices/internal/infrastructure/database"
	"github.com/Atlas00000/sharevoices/internal/logger"
	"github.com/Atlas00000/sharevoices/internal/metrics"
)

const healthCheckTimeout = 2 * time.Second

// Dependency is a named backing store probed by the health endpoint.
type Dependency struct {
	Name  string
	Check database.Check
}

// HealthHandler handles health check requests. Only the primary store decides
// whether the service is healthy; the cache and the search index are derived
// views and merely degrade it.
type HealthHandler struct {
	primary  Dependency
	optional []Dependency
	pool     *pgxpool.Pool
}

// NewHealthHandler creates a new HealthHandler with PostgreSQL as the primary store.
func NewHealthHandler(pool *pgxpool.Pool, optional ...Dependency) *HealthHandler {
	return &HealthHandler{
		primary:  Dependency{Name: "postgres", Check: database.PostgresCheck(pool)},
		optional: optional,
		pool:     pool,
	}
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
	if h.pool != nil {
		metrics.LogHealthCheckMetrics(ctx, h.pool)
	}

	services := make(map[string]string, len(h.optional)+1)
	status := "healthy"

	if !h.probe(ctx, h.primary, services) {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}
	for _, dep := range h.optional {
		if !h.probe(ctx, dep, services) {
			status = "degraded"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   status,
		Version:  "1.0.0",
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.probe(c.Request.Context(), h.primary, map[string]string{}) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (h *HealthHandler) probe(ctx context.Context, dep Dependency, services map[string]string) bool {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := dep.Check(ctx); err != nil {
		services[dep.Name] = "unhealthy"
		logger.WarnContext(ctx, "health check failed",
			slog.String("dependency", dep.Name),
			slog.String("error", err.Error()))
		return false
	}
	services[dep.Name] = "healthy"
	return true
}
