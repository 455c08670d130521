package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/service"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/httputil"
)

// AuthenticationMiddleware authenticates requests via a Bearer token in
// the Authorization header (scheme matched case-insensitively) and stores
// the authenticated user id in the request context.
//
// Signature validation and the blacklist check are separate gates: a
// logged-out token still carries a valid signature but must be treated as
// unauthenticated. Missing, malformed, invalid, expired, and revoked
// tokens all produce 401.
func AuthenticationMiddleware(
	tokenService authService.TokenService,
	blacklist authService.TokenBlacklist,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		token := authHeader[len(bearerPrefix):]
		if token == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		userID, err := tokenService.Validate(token)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// A structurally valid token may still have been revoked by logout
		if blacklist.IsInvalid(token) {
			logger.Debug("authentication failed: token revoked",
				slog.String("user_id", userID.String()))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		ctx := WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("user_id", userID.String()))

		c.Next()
	}
}
