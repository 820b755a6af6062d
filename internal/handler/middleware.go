package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// APIKeyAuth guards a route group behind the X-API-Key header. An empty
// configured key disables the check entirely.
func APIKeyAuth(key string) gin.HandlerFunc {
	if key == "" {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		switch presented := strings.TrimSpace(c.GetHeader("X-API-Key")); {
		case presented == "":
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-API-Key header required"})
		case presented != key:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "API key not recognized"})
		default:
			c.Next()
		}
	}
}
