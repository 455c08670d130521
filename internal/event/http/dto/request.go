// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/event/domain"
)

// CreateEventRequest contains the parameters for creating an event.
// Times are RFC 3339 strings on the wire.
type CreateEventRequest struct {
	CalendarID  uuid.UUID  `json:"calendar_id" binding:"required"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	StartsAt    time.Time  `json:"starts_at" binding:"required"`
	EndsAt      time.Time  `json:"ends_at" binding:"required"`
}

// Validate checks if the create event request is valid.
func (r *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CalendarID, validation.Required),
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.Description, validation.Length(0, 1024)),
		validation.Field(&r.StartsAt, validation.Required),
		validation.Field(&r.EndsAt, validation.Required),
	)
}

// ToInput converts the request to a domain input.
func (r *CreateEventRequest) ToInput() *domain.CreateEventInput {
	return &domain.CreateEventInput{
		CalendarID:  r.CalendarID,
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
	}
}

// UpdateEventRequest contains the parameters for updating an event.
// Absent fields are left unchanged.
type UpdateEventRequest struct {
	CalendarID  *uuid.UUID `json:"calendar_id"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

// Validate checks if the update event request is valid.
func (r *UpdateEventRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty,
			validation.Length(1, 255),
		),
		validation.Field(&r.Description, validation.Length(0, 1024)),
	)
}

// ToInput converts the request to a domain input.
func (r *UpdateEventRequest) ToInput() *domain.UpdateEventInput {
	return &domain.UpdateEventInput{
		CalendarID:  r.CalendarID,
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
	}
}
