// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/note/domain"
)

// NoteResponse represents a note in API responses.
type NoteResponse struct {
	ID         string    `json:"id"`
	CalendarID *string   `json:"calendar_id,omitempty"`
	CategoryID *string   `json:"category_id,omitempty"`
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MapNoteToResponse converts a domain note to an API response.
func MapNoteToResponse(note *domain.Note) NoteResponse {
	response := NoteResponse{
		ID:        note.ID.String(),
		Name:      note.Name,
		Content:   note.Content,
		Status:    string(note.Status),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
	if note.CalendarID != nil {
		calendarID := note.CalendarID.String()
		response.CalendarID = &calendarID
	}
	if note.CategoryID != nil {
		categoryID := note.CategoryID.String()
		response.CategoryID = &categoryID
	}
	return response
}

// ListNotesResponse represents a paginated list of notes in API responses.
type ListNotesResponse struct {
	Data []NoteResponse `json:"data"`
}

// MapNotesToListResponse converts a slice of domain notes to a list response.
func MapNotesToListResponse(notes []*domain.Note) ListNotesResponse {
	data := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		data = append(data, MapNoteToResponse(note))
	}

	return ListNotesResponse{
		Data: data,
	}
}
