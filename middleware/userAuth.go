package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookease/utils"
)

// TokenRevoker reports whether a token has been revoked by an explicit
// sign-out.
type TokenRevoker interface {
	IsRevoked(token string) bool
}

// bearerToken pulls the token out of the Authorization header, returning
// "" when the header is absent or malformed.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// JWTAuthUserMiddleware guards user routes. On success the user ID and
// the raw token are stored on the context for handlers.
func JWTAuthUserMiddleware(revoker TokenRevoker) gin.HandlerFunc {
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
		if role != "user" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User access required"})
			return
		}
		if revoker != nil && revoker.IsRevoked(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		c.Set("userID", subject)
		c.Set("authToken", tokenString)
		c.Next()
	}
}
