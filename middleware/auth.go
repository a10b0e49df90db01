// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"ecoskip/utils"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key holding the authenticated user's id.
const UserIDKey = "userID"

// JWTAuthMiddleware requires a bearer token. A header with no token is 401; a
// non-bearer scheme or a token that fails verification or has expired is 403.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, tokenString, _ := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Access token required", "")
			return
		}
		if !strings.EqualFold(scheme, "Bearer") {
			utils.JSONError(c, http.StatusForbidden, "Invalid token", "")
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusForbidden, "Invalid token", "")
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the id set by JWTAuthMiddleware.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
