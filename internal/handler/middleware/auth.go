package middleware

import (
	"log/slog"
	"strings"

	"hotel-admin/internal/handler/httperr"
	"hotel-admin/internal/pkg/errs"
	"hotel-admin/internal/usecase"
	"hotel-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxCurrentUserKey = "current_user"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortUnauthorized(c, errs.ErrUnauthorized, "Not authenticated")
			return
		}

		u, err := m.tokenValidator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			if !errs.Is(err, errs.ErrUnauthorized) {
				httperr.Handle(c, err)
				return
			}
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortUnauthorized(c, err, "Could not validate credentials")
			return
		}

		c.Set(ctxCurrentUserKey, u)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func GetCurrentUser(c *gin.Context) (*queries.UserView, bool) {
	v, exists := c.Get(ctxCurrentUserKey)
	if !exists {
		return nil, false
	}

	u, ok := v.(*queries.UserView)
	return u, ok
}

// SetCurrentUser is used by tests that bypass token validation
func SetCurrentUser(c *gin.Context, u *queries.UserView) {
	c.Set(ctxCurrentUserKey, u)
}
