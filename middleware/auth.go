package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/marodi-mykhailo/pan-zelek/auth"
	"github.com/marodi-mykhailo/pan-zelek/models"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// RequireAuth rejects requests without a valid token and puts user_id and
// role into the request context.
func RequireAuth(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		c.Abort()
		return
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("user_id", claims.UserID)
	c.Set("role", claims.Role)
	c.Next()
}

// OptionalAuth attaches the user identity when a valid token is present and
// stays silent otherwise, so guests share the same routes.
func OptionalAuth(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		if claims, err := auth.ParseToken(token); err == nil {
			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
		}
	}
	c.Next()
}

// RequireAdmin gates back-office endpoints. Must run after RequireAuth.
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		c.Abort()
		return
	}
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}

// CallerIdentity resolves the cart/order owner for a request: the
// authenticated user when present, otherwise the X-Session-ID header.
func CallerIdentity(c *gin.Context) models.Identity {
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(string); ok && id != "" {
			return models.UserIdentity(id)
		}
	}
	if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
		return models.SessionIdentity(sessionID)
	}
	return models.Identity{}
}
