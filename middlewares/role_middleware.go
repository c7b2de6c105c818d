package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole blocks the request unless the session role is one of the given
// roles. Finer-grained ownership checks stay in the services.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "you do not have permission to perform this action"})
	}
}
