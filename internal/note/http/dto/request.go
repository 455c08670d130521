// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/note/domain"
)

// CreateNoteRequest contains the parameters for creating a note.
type CreateNoteRequest struct {
	CalendarID *uuid.UUID `json:"calendar_id"`
	CategoryID *uuid.UUID `json:"category_id"`
	Name       string     `json:"name" binding:"required"`
	Content    string     `json:"content"`
}

// Validate checks if the create note request is valid.
func (r *CreateNoteRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(&r.Content, validation.Length(0, 65535)),
	)
}

// ToInput converts the request to a domain input.
func (r *CreateNoteRequest) ToInput() *domain.CreateNoteInput {
	return &domain.CreateNoteInput{
		CalendarID: r.CalendarID,
		CategoryID: r.CategoryID,
		Name:       r.Name,
		Content:    r.Content,
	}
}

// UpdateNoteRequest contains the parameters for updating a note.
// Absent fields are left unchanged.
type UpdateNoteRequest struct {
	CalendarID *uuid.UUID `json:"calendar_id"`
	CategoryID *uuid.UUID `json:"category_id"`
	Name       *string    `json:"name"`
	Content    *string    `json:"content"`
	Status     *string    `json:"status"`
}

// Validate checks if the update note request is valid.
func (r *UpdateNoteRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty,
			validation.Length(1, 255),
		),
		validation.Field(&r.Content, validation.Length(0, 65535)),
		validation.Field(&r.Status, validation.In(
			string(domain.NoteStatusActive),
			string(domain.NoteStatusCompleted),
		)),
	)
}

// ToInput converts the request to a domain input.
func (r *UpdateNoteRequest) ToInput() *domain.UpdateNoteInput {
	input := &domain.UpdateNoteInput{
		CalendarID: r.CalendarID,
		CategoryID: r.CategoryID,
		Name:       r.Name,
		Content:    r.Content,
	}
	if r.Status != nil {
		status := domain.NoteStatus(*r.Status)
		input.Status = &status
	}
	return input
}
