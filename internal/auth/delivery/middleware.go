package delivery

import (
	"net/http"
	"strings"

	authdomain "taskmanager-backend/internal/auth/domain"
	"taskmanager-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token into a user and binds both to the
// request context. The raw token is kept so logout can revoke exactly the
// session that made the request. Any failure aborts with 401 and binds
// nothing.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		token := parts[1]
		user, err := authUsecase.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or revoked token"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Set("token", token)
		c.Next()
	}
}

// CurrentUser returns the user bound by AuthMiddleware.
func CurrentUser(c *gin.Context) *authdomain.User {
	return c.MustGet("user").(*authdomain.User)
}
