// Package http provides the HTTP handlers for note management.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/http"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/httputil"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/note/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/note/http/dto"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/note/usecase"
	customValidation "github.com/0zzz7y/open-calendar-backend-sub001/internal/validation"
)

// NoteHandler handles HTTP requests for note management.
// All routes require an authenticated user.
type NoteHandler struct {
	noteUseCase usecase.NoteUseCase
	logger      *slog.Logger
}

// NewNoteHandler creates a new note handler with required dependencies.
func NewNoteHandler(noteUC usecase.NoteUseCase, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		noteUseCase: noteUC,
		logger:      logger,
	}
}

// CreateHandler creates a new note.
// POST /v1/notes - Authenticated.
// Returns 201 Created with the note, 404 when the referenced calendar or
// category is not the user's, 422 on validation failure.
func (h *NoteHandler) CreateHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateNoteRequest

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
	note, err := h.noteUseCase.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("note created",
		slog.String("note_id", note.ID.String()),
		slog.String("user_id", userID.String()))

	response := dto.MapNoteToResponse(note)
	c.JSON(http.StatusCreated, response)
}

// GetHandler retrieves one of the user's notes by ID.
// GET /v1/notes/:id - Authenticated.
// Returns 200 OK with the note, 404 when it does not exist or belongs to
// another user.
func (h *NoteHandler) GetHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Parse and validate UUID
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid note ID format: must be a valid UUID"),
			h.logger)
		return
	}

	// Call use case
	note, err := h.noteUseCase.Get(c.Request.Context(), userID, noteID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapNoteToResponse(note)
	c.JSON(http.StatusOK, response)
}

// ListHandler retrieves the user's notes with optional filters and
// pagination support.
// GET /v1/notes?calendar_id=&category_id=&status=&offset=0&limit=50 - Authenticated.
// Returns 200 OK with the paginated note list.
func (h *NoteHandler) ListHandler(c *gin.Context) {
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

	filter, err := parseNoteFilter(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	// Call use case
	notes, err := h.noteUseCase.List(c.Request.Context(), userID, filter, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapNotesToListResponse(notes)
	c.JSON(http.StatusOK, response)
}

// UpdateHandler applies a partial update to one of the user's notes.
// PUT /v1/notes/:id - Authenticated.
// Returns 200 OK with the updated note, 404 when it does not exist, 422 on
// validation failure or an unknown status.
func (h *NoteHandler) UpdateHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Parse and validate UUID
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid note ID format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.UpdateNoteRequest

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
	note, err := h.noteUseCase.Update(c.Request.Context(), userID, noteID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapNoteToResponse(note)
	c.JSON(http.StatusOK, response)
}

// DeleteHandler removes one of the user's notes.
// DELETE /v1/notes/:id - Authenticated.
// Returns 204 No Content on success, 404 when it does not exist or belongs
// to another user.
func (h *NoteHandler) DeleteHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Parse and validate UUID
	noteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid note ID format: must be a valid UUID"),
			h.logger)
		return
	}

	// Call use case
	if err := h.noteUseCase.Delete(c.Request.Context(), userID, noteID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return 204 No Content
	c.Data(http.StatusNoContent, "application/json", nil)
}

// parseNoteFilter extracts the optional list filters from the query string.
func parseNoteFilter(c *gin.Context) (*domain.NoteFilter, error) {
	filter := &domain.NoteFilter{}

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
	if raw := c.Query("status"); raw != "" {
		status := domain.NoteStatus(raw)
		if !status.Valid() {
			return nil, fmt.Errorf("invalid status parameter: must be active or completed")
		}
		filter.Status = &status
	}

	return filter, nil
}
