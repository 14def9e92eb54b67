package api

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/news-portal-api/internal/auth"
	apperrors "github.com/news-portal-api/pkg/errors"
	"github.com/rs/zerolog"
)

// authMiddleware resolves the bearer token into a principal and admits
// dashboard roles only. The principal travels in the request context.
func authMiddleware(resolver auth.Resolver, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			respondError(c, apperrors.NewUnauthorizedError("authentication required"))
			c.Abort()
			return
		}

		principal, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}

		ctx := auth.WithPrincipal(c.Request.Context(), principal)
		if _, err := auth.RequireDashboard(ctx); err != nil {
			log.Warn().
				Str("user_id", principal.UserID).
				Str("role", string(principal.Role)).
				Msg("Dashboard access denied")
			respondError(c, err)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
