package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware validates upstream-issued JWTs and threads the resolved tenant
// identity through the request context
type Middleware struct {
	secret string
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(secret string) *Middleware {
	return &Middleware{secret: secret}
}

// RequireAuth validates the bearer token and sets principal and tenant
// context. Requests without a resolvable identity never reach the gate.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := ParseToken(tokenString, m.secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("email", claims.Email)
		c.Set("tenant_id", claims.TenantID)
		c.Set("role", claims.Role)
		c.Set("auth_claims", claims)

		c.Next()
	}
}
