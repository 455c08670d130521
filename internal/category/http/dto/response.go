// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/category/domain"
)

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapCategoryToResponse converts a domain category to an API response.
func MapCategoryToResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Color:     category.Color,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ListCategoriesResponse represents a paginated list of categories in API responses.
type ListCategoriesResponse struct {
	Data []CategoryResponse `json:"data"`
}

// MapCategoriesToListResponse converts a slice of domain categories to a list response.
func MapCategoriesToListResponse(categories []*domain.Category) ListCategoriesResponse {
	data := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		data = append(data, MapCategoryToResponse(category))
	}

	return ListCategoriesResponse{
		Data: data,
	}
}
