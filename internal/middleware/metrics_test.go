package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Atlas00000/sharevoices/internal/logger"
	"github.com/Atlas00000/sharevoices/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("labels requests by route template", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/api/v1/articles/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
		})

		counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/articles/:id", "200")
		initialTotal := testutil.ToFloat64(counter)
		initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		for _, key := range []string{"clean-water-initiatives", "5f0c1d5e-8c1b-4c1e-9d5e-2b7f7f0e3a11"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles/"+key, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}

		assert.Equal(t, initialTotal+2, testutil.ToFloat64(counter))
		assert.Equal(t, initialInFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight))
	})

	t.Run("records error status codes", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.DELETE("/api/v1/articles/:id", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		})

		counter := metrics.HTTPRequestsTotal.WithLabelValues("DELETE", "/api/v1/articles/:id", "404")
		initialTotal := testutil.ToFloat64(counter)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/articles/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, initialTotal+1, testutil.ToFloat64(counter))
	})

	t.Run("skips probe endpoints", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/health", "200")
		initialTotal := testutil.ToFloat64(counter)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, initialTotal, testutil.ToFloat64(counter))
	})

	t.Run("writes access log with request id", func(t *testing.T) {
		var buf bytes.Buffer
		logger.Configure(&buf, "info")
		defer logger.Configure(io.Discard, "info")

		router := gin.New()
		router.Use(RequestID(), Metrics())
		router.POST("/api/v1/articles", func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"id": "123"})
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/articles", nil)
		req.Header.Set(RequestIDHeader, "req-access-log")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, buf.String(), `"msg":"request completed"`)
		assert.Contains(t, buf.String(), `"request_id":"req-access-log"`)
		assert.Contains(t, buf.String(), `"status":201`)
	})
}
