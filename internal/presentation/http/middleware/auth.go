package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mwirigi/salepoint-api/internal/infrastructure/upstream"
	"github.com/mwirigi/salepoint-api/internal/presentation/http/dto/response"
	"github.com/mwirigi/salepoint-api/pkg/utils"
)

// AuthMiddleware validates the upstream-issued bearer token and stashes it
// for forwarding. The upstream backend owns authentication; the gateway only
// checks the token it issued (shared HMAC secret) to key session state.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]

		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)

		// Forward the same token on every upstream call made for this request.
		ctx := upstream.ContextWithToken(c.Request.Context(), tokenString)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
