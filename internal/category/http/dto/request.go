// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/category/domain"
	customValidation "github.com/0zzz7y/open-calendar-backend-sub001/internal/validation"
)

// CreateCategoryRequest contains the parameters for creating a category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// Validate checks if the create category request is valid.
func (r *CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.Color, customValidation.HexColor),
	)
}

// ToInput converts the request to a domain input.
func (r *CreateCategoryRequest) ToInput() *domain.CreateCategoryInput {
	return &domain.CreateCategoryInput{
		Name:  r.Name,
		Color: r.Color,
	}
}

// UpdateCategoryRequest contains the parameters for updating a category.
// Absent fields are left unchanged.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// Validate checks if the update category request is valid.
func (r *UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty,
			validation.Length(1, 255),
		),
		validation.Field(&r.Color, customValidation.HexColor),
	)
}

// ToInput converts the request to a domain input.
func (r *UpdateCategoryRequest) ToInput() *domain.UpdateCategoryInput {
	return &domain.UpdateCategoryInput{
		Name:  r.Name,
		Color: r.Color,
	}
}
