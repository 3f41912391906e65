package middleware

import (
	"net/http"
	"strings"

	jwtsvc "mediashare/internal/pkg/jwt"
	"mediashare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth rejects requests without a valid bearer token before any
// handler or resource lookup runs. On success the actor's identity is
// stored on the context under "user_id".
func JWTAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.AbortError(c, http.StatusUnauthorized, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("level", claims.Level)

		c.Next()
	}
}
