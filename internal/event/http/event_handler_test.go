package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/http"
	calendarDomain "github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/event/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/event/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEventRouter(uc *mocks.MockEventUseCase, userID uuid.UUID) *gin.Engine {
	handler := NewEventHandler(uc, testLogger())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(authHttp.WithUserID(c.Request.Context(), userID))
		c.Next()
	})
	router.POST("/v1/events", handler.CreateHandler)
	router.GET("/v1/events", handler.ListHandler)
	router.GET("/v1/events/:id", handler.GetHandler)
	router.PUT("/v1/events/:id", handler.UpdateHandler)
	router.DELETE("/v1/events/:id", handler.DeleteHandler)
	return router
}

func TestEventHandler_Create(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	calendarID := uuid.Must(uuid.NewV7())
	startsAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	endsAt := startsAt.Add(time.Hour)

	t.Run("Success_Returns201", func(t *testing.T) {
		uc := &mocks.MockEventUseCase{}
		eventID := uuid.Must(uuid.NewV7())

		uc.On("Create", mock.Anything, userID, &domain.CreateEventInput{
			CalendarID: calendarID,
			Name:       "Standup",
			StartsAt:   startsAt,
			EndsAt:     endsAt,
		}).Return(&domain.Event{
			ID:         eventID,
			UserID:     userID,
			CalendarID: calendarID,
			Name:       "Standup",
			StartsAt:   startsAt,
			EndsAt:     endsAt,
		}, nil).Once()

		body := `{"calendar_id":"` + calendarID.String() + `","name":"Standup",` +
			`"starts_at":"2026-09-01T10:00:00Z","ends_at":"2026-09-01T11:00:00Z"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newEventRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, eventID.String(), response["id"])
		assert.Equal(t, calendarID.String(), response["calendar_id"])
		assert.NotContains(t, response, "category_id")
		uc.AssertExpectations(t)
	})

	t.Run("Error_InvertedRange_Returns422", func(t *testing.T) {
		uc := &mocks.MockEventUseCase{}
		uc.On("Create", mock.Anything, userID, mock.Anything).
			Return(nil, domain.ErrInvalidTimeRange).Once()

		body := `{"calendar_id":"` + calendarID.String() + `","name":"Backwards",` +
			`"starts_at":"2026-09-01T11:00:00Z","ends_at":"2026-09-01T10:00:00Z"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newEventRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_ForeignCalendar_Returns404", func(t *testing.T) {
		uc := &mocks.MockEventUseCase{}
		uc.On("Create", mock.Anything, userID, mock.Anything).
			Return(nil, calendarDomain.ErrCalendarNotFound).Once()

		body := `{"calendar_id":"` + calendarID.String() + `","name":"Foreign",` +
			`"starts_at":"2026-09-01T10:00:00Z","ends_at":"2026-09-01T11:00:00Z"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newEventRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_MissingTimes_Returns422", func(t *testing.T) {
		uc := &mocks.MockEventUseCase{}

		body := `{"calendar_id":"` + calendarID.String() + `","name":"No times"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/events", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newEventRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEventHandler_List(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	calendarID := uuid.Must(uuid.NewV7())

	t.Run("Success_NoFilter", func(t *testing.T) {
		uc := &mocks.MockEventUseCase{}
		uc.On("List", mock.Anything, userID, &domain.EventFilter{}, 0, 50).
			Return([]*domain.Event{}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)

		newEventRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[]}`, w.Body.String())
	})

	t.Run("Success_WithFilters", func(t *testing.T) {
		uc := &mocks.MockEventUseCase{}
		from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

		uc.On("List", mock.Anything, userID, mock.MatchedBy(func(f *domain.EventFilter) bool {
			return f.CalendarID != nil && *f.CalendarID == calendarID &&
				f.From != nil && f.From.Equal(from) && f.CategoryID == nil && f.To == nil
		}), 0, 50).Return([]*domain.Event{}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/v1/events?calendar_id="+calendarID.String()+"&from=2026-09-01T00:00:00Z", nil)

		newEventRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})

	t.Run("Error_BadCalendarID_Returns422", func(t *testing.T) {
		uc := &mocks.MockEventUseCase{}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/events?calendar_id=nope", nil)

		newEventRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		uc.AssertNotCalled(t, "List",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_BadFrom_Returns422", func(t *testing.T) {
		uc := &mocks.MockEventUseCase{}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/events?from=yesterday", nil)

		newEventRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestEventHandler_Get(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	eventID := uuid.Must(uuid.NewV7())
	categoryID := uuid.Must(uuid.NewV7())

	t.Run("Success_WithCategory", func(t *testing.T) {
		uc := &mocks.MockEventUseCase{}
		uc.On("Get", mock.Anything, userID, eventID).Return(&domain.Event{
			ID:         eventID,
			UserID:     userID,
			CalendarID: uuid.Must(uuid.NewV7()),
			CategoryID: &categoryID,
			Name:       "Review",
		}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/events/"+eventID.String(), nil)

		newEventRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, categoryID.String(), response["category_id"])
	})

	t.Run("Error_NotFound_Returns404", func(t *testing.T) {
		uc := &mocks.MockEventUseCase{}
		uc.On("Get", mock.Anything, userID, eventID).
			Return(nil, domain.ErrEventNotFound).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/events/"+eventID.String(), nil)

		newEventRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEventHandler_Update(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	eventID := uuid.Must(uuid.NewV7())

	t.Run("Success_Returns200", func(t *testing.T) {
		uc := &mocks.MockEventUseCase{}
		name := "Renamed"

		uc.On("Update", mock.Anything, userID, eventID,
			&domain.UpdateEventInput{Name: &name}).
			Return(&domain.Event{
				ID:         eventID,
				UserID:     userID,
				CalendarID: uuid.Must(uuid.NewV7()),
				Name:       "Renamed",
			}, nil).Once()

		body := `{"name":"Renamed"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/events/"+eventID.String(), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newEventRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_InvertedRange_Returns422", func(t *testing.T) {
		uc := &mocks.MockEventUseCase{}
		uc.On("Update", mock.Anything, userID, eventID, mock.Anything).
			Return(nil, domain.ErrInvalidTimeRange).Once()

		body := `{"starts_at":"2026-09-01T12:00:00Z"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/events/"+eventID.String(), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newEventRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestEventHandler_Delete(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	eventID := uuid.Must(uuid.NewV7())

	t.Run("Success_Returns204", func(t *testing.T) {
		uc := &mocks.MockEventUseCase{}
		uc.On("Delete", mock.Anything, userID, eventID).Return(nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/events/"+eventID.String(), nil)

		newEventRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error_NotFound_Returns404", func(t *testing.T) {
		uc := &mocks.MockEventUseCase{}
		uc.On("Delete", mock.Anything, userID, eventID).
			Return(domain.ErrEventNotFound).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/events/"+eventID.String(), nil)

		newEventRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
