// Package http provides the HTTP handlers for calendar management.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/http"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/http/dto"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/usecase"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/httputil"
	customValidation "github.com/0zzz7y/open-calendar-backend-sub001/internal/validation"
)

// CalendarHandler handles HTTP requests for calendar management.
// All routes require an authenticated user; every operation is scoped to the
// calling user's calendars.
type CalendarHandler struct {
	calendarUseCase usecase.CalendarUseCase
	logger          *slog.Logger
}

// NewCalendarHandler creates a new calendar handler with required dependencies.
func NewCalendarHandler(calendarUC usecase.CalendarUseCase, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{
		calendarUseCase: calendarUC,
		logger:          logger,
	}
}

// CreateHandler creates a new calendar.
// POST /v1/calendars - Authenticated.
// Returns 201 Created with the calendar, 422 on validation failure.
func (h *CalendarHandler) CreateHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateCalendarRequest

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
	calendar, err := h.calendarUseCase.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("calendar created",
		slog.String("calendar_id", calendar.ID.String()),
		slog.String("user_id", userID.String()))

	response := dto.MapCalendarToResponse(calendar)
	c.JSON(http.StatusCreated, response)
}

// GetHandler retrieves one of the user's calendars by ID.
// GET /v1/calendars/:id - Authenticated.
// Returns 200 OK with the calendar, 404 when it does not exist or belongs
// to another user.
func (h *CalendarHandler) GetHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Parse and validate UUID
	calendarID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid calendar ID format: must be a valid UUID"),
			h.logger)
		return
	}

	// Call use case
	calendar, err := h.calendarUseCase.Get(c.Request.Context(), userID, calendarID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapCalendarToResponse(calendar)
	c.JSON(http.StatusOK, response)
}

// ListHandler retrieves the user's calendars with pagination support.
// GET /v1/calendars?offset=0&limit=50 - Authenticated.
// Returns 200 OK with the paginated calendar list.
func (h *CalendarHandler) ListHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Parse offset and limit query parameters
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	calendars, err := h.calendarUseCase.List(c.Request.Context(), userID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapCalendarsToListResponse(calendars)
	c.JSON(http.StatusOK, response)
}

// UpdateHandler applies a partial update to one of the user's calendars.
// PUT /v1/calendars/:id - Authenticated.
// Returns 200 OK with the updated calendar, 404 when it does not exist or
// belongs to another user, 422 on validation failure.
func (h *CalendarHandler) UpdateHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Parse and validate UUID
	calendarID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid calendar ID format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.UpdateCalendarRequest

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
	calendar, err := h.calendarUseCase.Update(c.Request.Context(), userID, calendarID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapCalendarToResponse(calendar)
	c.JSON(http.StatusOK, response)
}

// DeleteHandler removes one of the user's calendars.
// DELETE /v1/calendars/:id - Authenticated.
// Returns 204 No Content on success, 404 when it does not exist or belongs
// to another user.
func (h *CalendarHandler) DeleteHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Parse and validate UUID
	calendarID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid calendar ID format: must be a valid UUID"),
			h.logger)
		return
	}

	// Call use case
	if err := h.calendarUseCase.Delete(c.Request.Context(), userID, calendarID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("calendar deleted",
		slog.String("calendar_id", calendarID.String()),
		slog.String("user_id", userID.String()))

	// Return 204 No Content
	c.Data(http.StatusNoContent, "application/json", nil)
}
