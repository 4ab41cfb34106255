package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookease/utils"
)

// JWTAuthAdminMiddleware guards back-office routes. Only tokens issued
// with the admin role pass.
func JWTAuthAdminMiddleware(revoker TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		subject, role, err := utils.ExtractClaims(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		if revoker != nil && revoker.IsRevoked(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		c.Set("adminID", subject)
		c.Set("authToken", tokenString)
		c.Next()
	}
}
