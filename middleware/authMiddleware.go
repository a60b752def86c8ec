package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jihanchy/bistro-baron-server/helpers"
	"github.com/Jihanchy/bistro-baron-server/store"
)

// ContextEmailKey is where Authentication stores the verified caller email
// for downstream handlers.
const ContextEmailKey = "email"

// Authentication validates the Authorization bearer token and puts the
// decoded claims on the request context. Requests without a valid token are
// rejected with 401 before any handler runs.
func Authentication(tokens *helpers.TokenHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

// VerifyAdmin looks up the authenticated caller and rejects the request with
// 403 unless the account carries the admin role. Must run after
// Authentication.
func VerifyAdmin(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}
