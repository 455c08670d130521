// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	"github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/domain"
)

// CalendarResponse represents a calendar in API responses.
type CalendarResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MapCalendarToResponse converts a domain calendar to an API response.
func MapCalendarToResponse(calendar *domain.Calendar) CalendarResponse {
	return CalendarResponse{
		ID:          calendar.ID.String(),
		Name:        calendar.Name,
		Description: calendar.Description,
		Color:       calendar.Color,
		CreatedAt:   calendar.CreatedAt,
		UpdatedAt:   calendar.UpdatedAt,
	}
}

// ListCalendarsResponse represents a paginated list of calendars in API responses.
type ListCalendarsResponse struct {
	Data []CalendarResponse `json:"data"`
}

// MapCalendarsToListResponse converts a slice of domain calendars to a list response.
func MapCalendarsToListResponse(calendars []*domain.Calendar) ListCalendarsResponse {
	data := make([]CalendarResponse, 0, len(calendars))
	for _, calendar := range calendars {
		data = append(data, MapCalendarToResponse(calendar))
	}

	return ListCalendarsResponse{
		Data: data,
	}
}
