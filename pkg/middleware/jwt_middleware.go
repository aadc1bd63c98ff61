package middleware

import (
	"net/http"
	"strings"
	"wayfare/pkg/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware verifies the bearer token issued by the identity provider
// and exposes its subject as the session key for all downstream handlers.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("session_id", claims.Subject)
		c.Next()
	}
}
