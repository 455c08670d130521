// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/event/domain"
)

// EventResponse represents an event in API responses.
type EventResponse struct {
	ID          string    `json:"id"`
	CalendarID  string    `json:"calendar_id"`
	CategoryID  *string   `json:"category_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MapEventToResponse converts a domain event to an API response.
func MapEventToResponse(event *domain.Event) EventResponse {
	response := EventResponse{
		ID:          event.ID.String(),
		CalendarID:  event.CalendarID.String(),
		Name:        event.Name,
		Description: event.Description,
		StartsAt:    event.StartsAt,
		EndsAt:      event.EndsAt,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
	if event.CategoryID != nil {
		categoryID := event.CategoryID.String()
		response.CategoryID = &categoryID
	}
	return response
}

// ListEventsResponse represents a paginated list of events in API responses.
type ListEventsResponse struct {
	Data []EventResponse `json:"data"`
}

// MapEventsToListResponse converts a slice of domain events to a list response.
func MapEventsToListResponse(events []*domain.Event) ListEventsResponse {
	data := make([]EventResponse, 0, len(events))
	for _, event := range events {
		data = append(data, MapEventToResponse(event))
	}

	return ListEventsResponse{
		Data: data,
	}
}
