// Package http provides the HTTP handlers for category management.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/http"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/category/http/dto"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/category/usecase"
	apperrors "github.com/0zzz7y/open-calendar-backend-sub001/internal/errors"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/httputil"
	customValidation "github.com/0zzz7y/open-calendar-backend-sub001/internal/validation"
)

// CategoryHandler handles HTTP requests for category management.
// All routes require an authenticated user.
type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
	logger          *slog.Logger
}

// NewCategoryHandler creates a new category handler with required dependencies.
func NewCategoryHandler(categoryUC usecase.CategoryUseCase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUC,
		logger:          logger,
	}
}

// CreateHandler creates a new category.
// POST /v1/categories - Authenticated.
// Returns 201 Created with the category, 409 on a duplicate name,
// 422 on validation failure.
func (h *CategoryHandler) CreateHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateCategoryRequest

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
	category, err := h.categoryUseCase.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("category created",
		slog.String("category_id", category.ID.String()),
		slog.String("user_id", userID.String()))

	response := dto.MapCategoryToResponse(category)
	c.JSON(http.StatusCreated, response)
}

// GetHandler retrieves one of the user's categories by ID.
// GET /v1/categories/:id - Authenticated.
// Returns 200 OK with the category, 404 when it does not exist or belongs
// to another user.
func (h *CategoryHandler) GetHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Parse and validate UUID
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid category ID format: must be a valid UUID"),
			h.logger)
		return
	}

	// Call use case
	category, err := h.categoryUseCase.Get(c.Request.Context(), userID, categoryID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapCategoryToResponse(category)
	c.JSON(http.StatusOK, response)
}

// ListHandler retrieves the user's categories with pagination support.
// GET /v1/categories?offset=0&limit=50 - Authenticated.
// Returns 200 OK with the paginated category list.
func (h *CategoryHandler) ListHandler(c *gin.Context) {
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
	categories, err := h.categoryUseCase.List(c.Request.Context(), userID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapCategoriesToListResponse(categories)
	c.JSON(http.StatusOK, response)
}

// UpdateHandler applies a partial update to one of the user's categories.
// PUT /v1/categories/:id - Authenticated.
// Returns 200 OK with the updated category, 404 when it does not exist,
// 409 on a duplicate name, 422 on validation failure.
func (h *CategoryHandler) UpdateHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Parse and validate UUID
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid category ID format: must be a valid UUID"),
			h.logger)
		return
	}

	var req dto.UpdateCategoryRequest

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
	category, err := h.categoryUseCase.Update(c.Request.Context(), userID, categoryID, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapCategoryToResponse(category)
	c.JSON(http.StatusOK, response)
}

// DeleteHandler removes one of the user's categories.
// DELETE /v1/categories/:id - Authenticated.
// Returns 204 No Content on success, 404 when it does not exist or belongs
// to another user.
func (h *CategoryHandler) DeleteHandler(c *gin.Context) {
	userID, ok := authHttp.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Parse and validate UUID
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c,
			fmt.Errorf("invalid category ID format: must be a valid UUID"),
			h.logger)
		return
	}

	// Call use case
	if err := h.categoryUseCase.Delete(c.Request.Context(), userID, categoryID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Return 204 No Content
	c.Data(http.StatusNoContent, "application/json", nil)
}
