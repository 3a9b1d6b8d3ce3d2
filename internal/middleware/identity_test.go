package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Atlas00000/sharevoices/internal/domain"
	"github.com/Atlas00000/sharevoices/internal/middleware"
)

func TestIdentity_RequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.Identity())
	router.POST("/articles", middleware.RequireRole(domain.RoleAdmin, domain.RoleEditor, domain.RoleAuthor), func(c *gin.Context) {
		actor, _ := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role})
	})
	router.GET("/articles", func(c *gin.Context) {
		_, ok := middleware.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	tests := []struct {
		name     string
		method   string
		userID   string
		role     string
		wantCode int
		wantBody string
	}{
		{name: "author may write", method: http.MethodPost, userID: "u-1", role: "author", wantCode: http.StatusOK, wantBody: `"role":"author"`},
		{name: "role is case insensitive", method: http.MethodPost, userID: "u-1", role: " Editor ", wantCode: http.StatusOK, wantBody: `"role":"editor"`},
		{name: "reader is forbidden", method: http.MethodPost, userID: "u-2", role: "reader", wantCode: http.StatusForbidden, wantBody: "insufficient permissions"},
		{name: "missing identity is unauthorized", method: http.MethodPost, wantCode: http.StatusUnauthorized, wantBody: "authentication required"},
		{name: "public route allows anonymous", method: http.MethodGet, wantCode: http.StatusOK, wantBody: `"authenticated":false`},
		{name: "public route sees identity", method: http.MethodGet, userID: "u-3", role: "reader", wantCode: http.StatusOK, wantBody: `"authenticated":true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/articles", nil)
			if tt.userID != "" {
				req.Header.Set(middleware.UserIDHeader, tt.userID)
				req.Header.Set(middleware.UserRoleHeader, tt.role)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestGetActor_NotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := middleware.GetActor(c)
	assert.False(t, ok)
}
