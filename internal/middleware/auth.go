package middleware

import (
	"net/http"
	"strings"

	"storefront/internal/auth"
	"storefront/internal/model"

	"github.com/gin-gonic/gin"
)

// AdminAuth validates the bearer token on admin routes and stores the claims
// in the request context.
func AdminAuth(authService *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("adminClaims", claims)
		c.Next()
	}
}

// GetClaimsFromContext returns the admin claims set by AdminAuth.
func GetClaimsFromContext(c *gin.Context) (*model.AdminClaims, bool) {
	claims, exists := c.Get("adminClaims")
	if !exists {
		return nil, false
	}

	adminClaims, ok := claims.(*model.AdminClaims)
	return adminClaims, ok
}
