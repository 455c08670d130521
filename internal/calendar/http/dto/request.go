// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/domain"
	customValidation "github.com/0zzz7y/open-calendar-backend-sub001/internal/validation"
)

// CreateCalendarRequest contains the parameters for creating a calendar.
type CreateCalendarRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Validate checks if the create calendar request is valid.
func (r *CreateCalendarRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.Description, validation.Length(0, 1024)),
		validation.Field(&r.Color, customValidation.HexColor),
	)
}

// ToInput converts the request to a domain input.
func (r *CreateCalendarRequest) ToInput() *domain.CreateCalendarInput {
	return &domain.CreateCalendarInput{
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
	}
}

// UpdateCalendarRequest contains the parameters for updating a calendar.
// Absent fields are left unchanged.
type UpdateCalendarRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// Validate checks if the update calendar request is valid.
func (r *UpdateCalendarRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty,
			validation.Length(1, 255),
		),
		validation.Field(&r.Description, validation.Length(0, 1024)),
		validation.Field(&r.Color, customValidation.HexColor),
	)
}

// ToInput converts the request to a domain input.
func (r *UpdateCalendarRequest) ToInput() *domain.UpdateCalendarInput {
	return &domain.UpdateCalendarInput{
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
	}
}
