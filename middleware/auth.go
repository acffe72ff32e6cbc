package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Karthick-Office/ecom/utils"
)

// AuthMiddleware accepts the session token from the "token" cookie or a
// Bearer header and requires the given role.
func AuthMiddleware(jwtKey []byte, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("token")
		if err != nil {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token not provided"})
				c.Abort()
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := utils.ValidateToken(jwtKey, token)
		if err != nil || claims.Role != role {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		c.Set("userID", claims.ID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireSelf rejects requests whose token id differs from the :id path
// parameter, so a valid token cannot act on another user's account.
func RequireSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param("id") != c.GetString("userID") {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot act on another user's account"})
			c.Abort()
			return
		}
		c.Next()
	}
}
