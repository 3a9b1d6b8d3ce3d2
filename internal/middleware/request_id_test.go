package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atlas00000/sharevoices/internal/logger"
	"github.com/Atlas00000/sharevoices/internal/middleware"
)

func requestIDRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/test", handler)
	return router
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	var fromGin, fromContext string
	router := requestIDRouter(func(c *gin.Context) {
		fromGin = middleware.GetRequestID(c)
		fromContext = logger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	require.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, requestID, 36)
	assert.Equal(t, requestID, fromGin)
	assert.Equal(t, requestID, fromContext)
}

func TestRequestID_UsesClientProvidedID(t *testing.T) {
	var fromContext string
	router := requestIDRouter(func(c *gin.Context) {
		fromContext = logger.RequestIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-provided-id-12345")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "client-provided-id-12345", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "client-provided-id-12345", fromContext)
}

func TestRequestID_ReplacesMalformedID(t *testing.T) {
	router := requestIDRouter(func(c *gin.Context) { c.Status(http.StatusOK) })

	for name, id := range map[string]string{
		"control characters": "abc\x01def",
		"spaces":             "id with spaces",
		"too long":           strings.Repeat("a", 129),
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set(middleware.RequestIDHeader, id)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			got := w.Header().Get(middleware.RequestIDHeader)
			assert.NotEqual(t, id, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestRequestID_MultipleRequests_DifferentIDs(t *testing.T) {
	seen := map[string]bool{}
	router := requestIDRouter(func(c *gin.Context) {
		seen[middleware.GetRequestID(c)] = true
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		require.Equal(t, http.StatusOK, w.Code)
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
		{name: "not set", want: ""},
		{name: "string value", value: "test-request-id", want: "test-request-id"},
		{name: "wrong type", value: 12345, want: ""},
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
