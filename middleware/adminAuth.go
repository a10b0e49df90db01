package middleware

import (
	"context"
	"net/http"

	"ecoskip/models"
	"ecoskip/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserLookup loads the account behind a token.
type UserLookup interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// AdminOnlyMiddleware must run after JWTAuthMiddleware. Roles are read from the
// store on every request so a demotion takes effect before the token expires.
func AdminOnlyMiddleware(users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := users.GetUserByID(c.Request.Context(), CurrentUserID(c))
		if err != nil {
			utils.GetLogger().Warn("admin check failed", zap.String("userId", CurrentUserID(c)), zap.Error(err))
			utils.JSONError(c, http.StatusForbidden, "Admin access required", "")
			return
		}
		if u.Role != models.RoleAdmin {
			utils.JSONError(c, http.StatusForbidden, "Admin access required", "")
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
