package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards routes behind bearer-token authentication
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth rejects requests without a valid bearer token. On success the
// acting user is stored on the gin context and the request context, so
// services and the audit trail can attribute mutations.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.authenticate(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		m.attach(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches the actor when a valid token is present but lets
// anonymous requests through.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := m.authenticate(c); err == nil {
			m.attach(c, claims)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context) (*AuthClaims, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, errMissingToken
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return nil, errMalformedHeader
	}
	return m.service.ValidateJWT(token)
}

func (m *AuthMiddleware) attach(c *gin.Context, claims *AuthClaims) {
	c.Set("username", claims.Username)
	c.Set("role", claims.Role)

	ctx := context.WithValue(c.Request.Context(), "actor", claims.Username)
	c.Request = c.Request.WithContext(ctx)
}

// Actor returns the authenticated username from the gin context, falling
// back to "system" for unauthenticated paths.
func Actor(c *gin.Context) string {
	if username := c.GetString("username"); username != "" {
		return username
	}
	return "system"
}
