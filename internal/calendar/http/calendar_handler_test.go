package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authHttp "github.com/0zzz7y/open-calendar-backend-sub001/internal/auth/http"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/calendar/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newCalendarRouter builds a router with the calendar routes and a stub
// middleware that injects the given user id, standing in for the
// authentication middleware.
func newCalendarRouter(uc *mocks.MockCalendarUseCase, userID uuid.UUID) *gin.Engine {
	handler := NewCalendarHandler(uc, testLogger())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(authHttp.WithUserID(c.Request.Context(), userID))
		c.Next()
	})
	router.POST("/v1/calendars", handler.CreateHandler)
	router.GET("/v1/calendars", handler.ListHandler)
	router.GET("/v1/calendars/:id", handler.GetHandler)
	router.PUT("/v1/calendars/:id", handler.UpdateHandler)
	router.DELETE("/v1/calendars/:id", handler.DeleteHandler)
	return router
}

func TestCalendarHandler_Create(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())

	t.Run("Success_Returns201", func(t *testing.T) {
		uc := &mocks.MockCalendarUseCase{}
		calendarID := uuid.Must(uuid.NewV7())

		uc.On("Create", mock.Anything, userID, &domain.CreateCalendarInput{
			Name:        "Work",
			Description: "Meetings",
			Color:       "#FF5722",
		}).Return(&domain.Calendar{
			ID:          calendarID,
			UserID:      userID,
			Name:        "Work",
			Description: "Meetings",
			Color:       "#FF5722",
		}, nil).Once()

		body := `{"name":"Work","description":"Meetings","color":"#FF5722"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/calendars", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newCalendarRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, calendarID.String(), response["id"])
		assert.Equal(t, "Work", response["name"])
		uc.AssertExpectations(t)
	})

	t.Run("Error_MissingName_Returns422", func(t *testing.T) {
		uc := &mocks.MockCalendarUseCase{}

		body := `{"description":"No name"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/calendars", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newCalendarRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_InvalidColor_Returns422", func(t *testing.T) {
		uc := &mocks.MockCalendarUseCase{}

		body := `{"name":"Work","color":"not-a-color"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/calendars", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newCalendarRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCalendarHandler_Get(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	calendarID := uuid.Must(uuid.NewV7())

	t.Run("Success_Returns200", func(t *testing.T) {
		uc := &mocks.MockCalendarUseCase{}
		uc.On("Get", mock.Anything, userID, calendarID).Return(&domain.Calendar{
			ID:     calendarID,
			UserID: userID,
			Name:   "Personal",
			Color:  "#2196F3",
		}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/calendars/"+calendarID.String(), nil)

		newCalendarRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Personal", response["name"])
	})

	t.Run("Error_NotFound_Returns404", func(t *testing.T) {
		uc := &mocks.MockCalendarUseCase{}
		uc.On("Get", mock.Anything, userID, calendarID).
			Return(nil, domain.ErrCalendarNotFound).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/calendars/"+calendarID.String(), nil)

		newCalendarRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_InvalidUUID_Returns422", func(t *testing.T) {
		uc := &mocks.MockCalendarUseCase{}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/calendars/not-a-uuid", nil)

		newCalendarRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		uc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCalendarHandler_List(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())

	t.Run("Success_Returns200", func(t *testing.T) {
		uc := &mocks.MockCalendarUseCase{}
		uc.On("List", mock.Anything, userID, 0, 50).Return([]*domain.Calendar{
			{ID: uuid.Must(uuid.NewV7()), UserID: userID, Name: "First"},
			{ID: uuid.Must(uuid.NewV7()), UserID: userID, Name: "Second"},
		}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/calendars", nil)

		newCalendarRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Data []map[string]interface{} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 2)
		assert.Equal(t, "First", response.Data[0]["name"])
	})

	t.Run("Success_EmptyList", func(t *testing.T) {
		uc := &mocks.MockCalendarUseCase{}
		uc.On("List", mock.Anything, userID, 0, 50).Return([]*domain.Calendar{}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/calendars", nil)

		newCalendarRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[]}`, w.Body.String())
	})

	t.Run("Success_CustomPagination", func(t *testing.T) {
		uc := &mocks.MockCalendarUseCase{}
		uc.On("List", mock.Anything, userID, 10, 5).Return([]*domain.Calendar{}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/calendars?offset=10&limit=5", nil)

		newCalendarRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})
}

func TestCalendarHandler_Update(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	calendarID := uuid.Must(uuid.NewV7())

	t.Run("Success_Returns200", func(t *testing.T) {
		uc := &mocks.MockCalendarUseCase{}
		name := "Renamed"

		uc.On("Update", mock.Anything, userID, calendarID,
			&domain.UpdateCalendarInput{Name: &name}).
			Return(&domain.Calendar{
				ID:     calendarID,
				UserID: userID,
				Name:   "Renamed",
				Color:  "#2196F3",
			}, nil).Once()

		body := `{"name":"Renamed"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/calendars/"+calendarID.String(), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newCalendarRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Renamed", response["name"])
	})

	t.Run("Error_NotFound_Returns404", func(t *testing.T) {
		uc := &mocks.MockCalendarUseCase{}
		uc.On("Update", mock.Anything, userID, calendarID, mock.Anything).
			Return(nil, domain.ErrCalendarNotFound).Once()

		body := `{"name":"Ghost"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/calendars/"+calendarID.String(), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newCalendarRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCalendarHandler_Delete(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	calendarID := uuid.Must(uuid.NewV7())

	t.Run("Success_Returns204", func(t *testing.T) {
		uc := &mocks.MockCalendarUseCase{}
		uc.On("Delete", mock.Anything, userID, calendarID).Return(nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/calendars/"+calendarID.String(), nil)

		newCalendarRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Error_NotFound_Returns404", func(t *testing.T) {
		uc := &mocks.MockCalendarUseCase{}
		uc.On("Delete", mock.Anything, userID, calendarID).
			Return(domain.ErrCalendarNotFound).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/calendars/"+calendarID.String(), nil)

		newCalendarRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
