package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"profitline/internal/core/apperror"
	"profitline/internal/domain/auth"
)

// JWTValidator validates access tokens.
type JWTValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// Auth middleware requires a valid Bearer token on protected routes.
func Auth(validator JWTValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortUnauthorized(c, "invalid authorization header")
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}
