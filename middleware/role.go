package middleware

import (
	"net/http"

	"harithakarmabhoomi/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to sessions carrying the given role.
// Role mismatch is the API rendition of the SPA's redirect to /login.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get("role")
		if !exists || got != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access restricted to " + string(role) + " accounts"})
			return
		}
		c.Next()
	}
}
