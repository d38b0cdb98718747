package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/invoicegen/invoice-generator-service/internal/service"
)

// OptionalAuth creates a middleware that decodes a bearer token when one is
// present but never rejects the request. No invoice route enforces
// authentication; handlers that care can read the subject from the context.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			// Invalid format, continue without setting subject context
			c.Next()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			// Invalid token, continue without setting subject context
			c.Next()
			return
		}

		c.Set("subject", claims.Subject)
		c.Next()
	}
}
