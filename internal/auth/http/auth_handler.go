package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/http/dto"
	usecase "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/usecase"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/httputil"
	customValidation "github.com/0zzz7y/open-calendar-backend-sub001/internal/validation"
)

// AuthHandler handles HTTP requests for registration, login, and logout.
type AuthHandler struct {
	authUseCase usecase.UseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new authentication handler with required dependencies.
func NewAuthHandler(authUC usecase.UseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUC,
		logger:      logger,
	}
}

// RegisterHandler creates a new account.
// POST /v1/authentication/register - Anonymous (rate-limited).
// Returns 201 Created with the account metadata, 409 on duplicate
// username or email, 422 on validation failure.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	user, err := h.authUseCase.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	response := dto.MapUserToResponse(user)
	c.JSON(http.StatusCreated, response)
}

// LoginHandler verifies credentials and returns a bearer token.
// POST /v1/authentication/login - Anonymous (rate-limited).
// Returns 200 OK with the token, 401 on invalid credentials.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	token, err := h.authUseCase.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// LogoutHandler revokes the bearer token carried in the Authorization header.
// POST /v1/authentication/logout - Anonymous (rate-limited).
// Returns 204 No Content on success, 400 on a malformed header.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.authUseCase.Logout(c.GetHeader("Authorization")); err != nil {
		if apperrors.Is(err, apperrors.ErrInvalidInput) {
			httputil.HandleBadRequestGin(c, err, h.logger)
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
