// Package http provides the HTTP handlers for user account operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/http"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/httputil"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/user/http/dto"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/user/usecase"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	userUseCase usecase.UseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(userUC usecase.UseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUC,
		logger:      logger,
	}
}

// MeHandler returns the authenticated user's own account.
// GET /v1/users/me - Authenticated.
// Returns 200 OK with the account, 401 when no valid token was presented.
func (h *UserHandler) MeHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Call use case
	user, err := h.userUseCase.Get(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapUserToResponse(user)
	c.JSON(http.StatusOK, response)
}
