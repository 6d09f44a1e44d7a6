// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"harithakarmabhoomi/services/user"
	"harithakarmabhoomi/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and restores the session
// pointer it references. Restoration does not re-check credentials; an
// expired or cleared pointer means the client must log in again.
func AuthMiddleware(userSvc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Validate the token signature and expiration.
		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		tokenHash := utils.HashToken(tokenString)
		sessionUser, err := userSvc.CurrentUser(c.Request.Context(), tokenHash)
		if err != nil || sessionUser == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
			return
		}

		c.Set("userID", sessionUser.ID)
		c.Set("role", string(sessionUser.Role))
		c.Set("currentUser", *sessionUser)
		c.Set("tokenHash", tokenHash)
		c.Next()
	}
}
