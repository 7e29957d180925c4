package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/daraghmehsaleh9-dot/Saleh/auth"
)

// ValidateToken requires a session bearer token and stores its claims on the
// context (user_id, email, is_admin, is_anonymous).
func ValidateToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	sc, err := auth.ParseSessionToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("user_id", sc.UserID)
	c.Set("email", sc.Email)
	c.Set("is_admin", sc.IsAdmin)
	c.Set("is_anonymous", sc.Anonymous)
	c.Next()
}

// RequireAdmin gates admin endpoints on the isAdmin custom claim carried by
// the session token. Admin access is enforced here, server-side, not only by
// client routing.
func RequireAdmin(c *gin.Context) {
	if !c.GetBool("is_admin") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
		c.Abort()
		return
	}
	c.Next()
}
