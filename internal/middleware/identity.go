package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Atlas00000/sharevoices/internal/domain"
)

const (
	// UserIDHeader carries the authenticated user id set by the gateway.
	UserIDHeader = "X-User-ID"
	// UserRoleHeader carries the authenticated user's role set by the gateway.
	UserRoleHeader = "X-User-Role"
	// ActorKey is the context key for the authenticated actor.
	ActorKey = "actor"
)

// Identity reads the caller identity forwarded by the API gateway. Requests
// without a user id continue anonymously. The gateway strips these headers
// from client requests, so they are trusted here.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if id != "" {
			c.Set(ActorKey, domain.Actor{
				ID:   id,
				Role: strings.ToLower(strings.TrimSpace(c.GetHeader(UserRoleHeader))),
			})
		}
		c.Next()
	}
}

// RequireRole aborts with 401 when no identity is present and 403 when the
// actor holds none of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !actor.HasRole(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

// GetActor retrieves the authenticated actor from the gin context.
func GetActor(c *gin.Context) (domain.Actor, bool) {
	if value, exists := c.Get(ActorKey); exists {
		if actor, ok := value.(domain.Actor); ok {
			return actor, true
		}
	}
	return domain.Actor{}, false
}
