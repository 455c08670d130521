// Package http provides the HTTP handlers for event management.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/http"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/event/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/event/http/dto"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/event/usecase"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/httputil"
	customValidation "github.com/0zzz7y/open-calendar-backend-sub001/internal/validation"
)

// EventHandler handles HTTP requests for event management.
// All routes require an authenticated user.
type EventHandler struct {
	eventUseCase usecase.EventUseCase
	logger       *slog.Logger
}

// NewEventHandler creates a new event handler with required dependencies.
func NewEventHandler(eventUC usecase.EventUseCase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUC,
		logger:       logger,
	}
}

// CreateHandler creates a new event.
// POST /v1/events - Authenticated.
// Returns 201 Created with the event, 404 when the calendar or category is
// not the user's, 422 on validation failure or an inverted time range.
func (h *EventHandler) CreateHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateEventRequest

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
	event, err := h.eventUseCase.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("event created",
		slog.String("event_id", event.ID.String()),
		slog.String("calendar_id", event.CalendarID.String()),
		slog.String("user_id", userID.String()))

	response := dto.MapEventToResponse(event)
	c.JSON(http.StatusCreated, response)
}

// GetHandler retrieves one of the user's events by ID.
// GET /v1/events/:id - Authenticated.
// Returns 200 OK with the event, 404 when it does not exist or belongs to
// another user.
func (h *EventHandler) GetHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Parse and validate UUID
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid event ID format: must be a valid UUID"),
			h.logger)
		return
	}

	// Call use case
	event, err := h.eventUseCase.Get(c.Request.Context(), userID, eventID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapEventToResponse(event)
	c.JSON(http.StatusOK, response)
}

// ListHandler retrieves the user's events with optional filters and
// pagination support.
// GET /v1/events?calendar_id=&category_id=&from=&to=&offset=0&limit=50 - Authenticated.
// Time bounds are RFC 3339. Returns 200 OK with the paginated event list.
func (h *EventHandler) ListHandler(c *gin.Context) {
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

	filter, err := parseEventFilter(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	events, err := h.eventUseCase.List(c.Request.Context(), userID, filter, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapEventsToListResponse(events)
	c.JSON(http.StatusOK, response)
}

// UpdateHandler applies a partial update to one of the user's events.
// PUT /v1/events/:id - Authenticated.
// Returns 200 OK with the updated event, 404 when it does not exist, 422 on
// validation failure or an inverted time range.
func (h *EventHandler) UpdateHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Parse and validate UUID
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid event ID format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.UpdateEventRequest

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
	event, err := h.eventUseCase.Update(c.Request.Context(), userID, eventID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapEventToResponse(event)
	c.JSON(http.StatusOK, response)
}

// DeleteHandler removes one of the user's events.
// DELETE /v1/events/:id - Authenticated.
// Returns 204 No Content on success, 404 when it does not exist or belongs
// to another user.
func (h *EventHandler) DeleteHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Parse and validate UUID
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid event ID format: must be a valid UUID"),
			h.logger)
		return
	}

	// Call use case
	if err := h.eventUseCase.Delete(c.Request.Context(), userID, eventID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return 204 No Content
	c.Data(http.StatusNoContent, "application/json", nil)
}

// parseEventFilter extracts the optional list filters from the query string.
func parseEventFilter(c *gin.Context) (*domain.EventFilter, error) {
	filter := &domain.EventFilter{}

	if raw := c.Query("calendar_id"); raw != "" {
		calendarID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid calendar_id parameter: must be a valid UUID")
		}
		filter.CalendarID = &calendarID
	}
	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid category_id parameter: must be a valid UUID")
		}
		filter.CategoryID = &categoryID
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid from parameter: must be an RFC 3339 timestamp")
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid to parameter: must be an RFC 3339 timestamp")
		}
		filter.To = &to
	}

	return filter, nil
}
