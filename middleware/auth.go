package middleware

import (
	"net/http"
	"strings"

	"concierge/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware guards the assistant API. Callers (the voice runtime, display
// surfaces) present the bearer token issued by the token endpoint.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "missing bearer token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		callerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("callerID", callerID)
		c.Next()
	}
}
