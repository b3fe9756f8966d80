package middleware

import (
	"strings"

	"vhts/response"
	"vhts/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware memeriksa token akses dan, jika diberikan, membatasi role
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, userRole, err := services.GetUserRoleFromToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Periksa role jika ada pembatasan
		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userRole {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Simpan informasi user ke context
		c.Set("userID", userID)
		c.Set("userRole", userRole)
		c.Next()
	}
}
