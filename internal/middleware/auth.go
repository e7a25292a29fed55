package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"malaeb/internal/domain"
	jwtsvc "malaeb/internal/pkg/jwt"
)

// UserLoader resolves the session user so every request re-checks account
// state instead of trusting a stale token.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Auth validates the bearer token, loads the account and puts user_id, role
// and locale into the request context. A deactivated account is rejected even
// while its token is still formally valid.
func Auth(jwt *jwtsvc.Service, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || !user.IsActive {
			abortUnauthorized(c, "Account unavailable")
			return
		}

		locale := user.PreferredLocale
		if q := c.Query("locale"); q != "" {
			locale = domain.ParseLocale(q)
		}

		c.Set("user_id", user.ID)
		c.Set("role", string(user.Role))
		c.Set("locale", string(locale))

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": "UNAUTHORIZED", "message": msg},
	})
}
