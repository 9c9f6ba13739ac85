package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Agboweroh/estateiq-backend/internal/error/response"
	"github.com/Agboweroh/estateiq-backend/services"
)

// AuthMiddleware validates bearer tokens and enforces role membership. It is
// constructed with the JWT service injected; validation is stateless.
type AuthMiddleware struct {
	jwt services.InterfaceJWTService
}

// NewAuthMiddleware creates the auth middleware
func NewAuthMiddleware(jwt services.InterfaceJWTService) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt}
}

// extractToken strips the "Bearer " prefix from an Authorization header
func extractToken(authHeader string) string {
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// Authorize decides allow/deny for a set of required roles against decoded
// claims. Exposed separately from the Gin handler so it can be reasoned
// about (and tested) as a plain predicate.
func Authorize(claims *services.JWTClaims, roles ...string) bool {
	if claims == nil {
		return false
	}
	if len(roles) == 0 {
		return claims.Role != ""
	}
	for _, role := range roles {
		if claims.Role == role {
			return true
		}
	}
	return false
}

// RequireRoles returns a handler that admits only the given roles. With no
// roles it admits any authenticated principal. The parsed claims are stored
// on the context for downstream handlers.
func (m *AuthMiddleware) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "authorization header is required")
			c.Abort()
			return
		}

		claims, err := m.jwt.ExtractClaims(extractToken(authHeader))
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		if !Authorize(claims, roles...) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

// CurrentClaims returns the claims stored by RequireRoles
func CurrentClaims(c *gin.Context) (*services.JWTClaims, bool) {
	v, ok := c.Get("claims")
	if !ok {
		return nil, false
	}
	claims, ok := v.(*services.JWTClaims)
	return claims, ok
}

// CurrentUserID returns the authenticated user's id, 0 when unauthenticated
func CurrentUserID(c *gin.Context) uint {
	claims, ok := CurrentClaims(c)
	if !ok {
		return 0
	}
	return claims.UserID
}
