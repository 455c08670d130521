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
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/category/domain"
	"github.com/0zzz7y/open-calendar-backend-sub001/internal/category/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCategoryRouter(uc *mocks.MockCategoryUseCase, userID uuid.UUID) *gin.Engine {
	handler := NewCategoryHandler(uc, testLogger())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(authHttp.WithUserID(c.Request.Context(), userID))
		c.Next()
	})
	router.POST("/v1/categories", handler.CreateHandler)
	router.GET("/v1/categories", handler.ListHandler)
	router.GET("/v1/categories/:id", handler.GetHandler)
	router.PUT("/v1/categories/:id", handler.UpdateHandler)
	router.DELETE("/v1/categories/:id", handler.DeleteHandler)
	return router
}

func TestCategoryHandler_Create(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())

	t.Run("Success_Returns201", func(t *testing.T) {
		uc := &mocks.MockCategoryUseCase{}
		categoryID := uuid.Must(uuid.NewV7())

		uc.On("Create", mock.Anything, userID, &domain.CreateCategoryInput{
			Name:  "Urgent",
			Color: "#F44336",
		}).Return(&domain.Category{
			ID:     categoryID,
			UserID: userID,
			Name:   "Urgent",
			Color:  "#F44336",
		}, nil).Once()

		body := `{"name":"Urgent","color":"#F44336"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/categories", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newCategoryRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, categoryID.String(), response["id"])
		uc.AssertExpectations(t)
	})

	t.Run("Error_DuplicateName_Returns409", func(t *testing.T) {
		uc := &mocks.MockCategoryUseCase{}
		uc.On("Create", mock.Anything, userID, mock.Anything).
			Return(nil, domain.ErrCategoryAlreadyExists).Once()

		body := `{"name":"Urgent"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/categories", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newCategoryRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Error_MissingName_Returns422", func(t *testing.T) {
		uc := &mocks.MockCategoryUseCase{}

		body := `{"color":"#F44336"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/categories", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newCategoryRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCategoryHandler_Get(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	categoryID := uuid.Must(uuid.NewV7())

	t.Run("Success_Returns200", func(t *testing.T) {
		uc := &mocks.MockCategoryUseCase{}
		uc.On("Get", mock.Anything, userID, categoryID).Return(&domain.Category{
			ID:     categoryID,
			UserID: userID,
			Name:   "Home",
			Color:  "#9E9E9E",
		}, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/categories/"+categoryID.String(), nil)

		newCategoryRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_NotFound_Returns404", func(t *testing.T) {
		uc := &mocks.MockCategoryUseCase{}
		uc.On("Get", mock.Anything, userID, categoryID).
			Return(nil, domain.ErrCategoryNotFound).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/categories/"+categoryID.String(), nil)

		newCategoryRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCategoryHandler_List(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())

	uc := &mocks.MockCategoryUseCase{}
	uc.On("List", mock.Anything, userID, 0, 50).Return([]*domain.Category{
		{ID: uuid.Must(uuid.NewV7()), UserID: userID, Name: "Errands"},
		{ID: uuid.Must(uuid.NewV7()), UserID: userID, Name: "Work"},
	}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/categories", nil)

	newCategoryRouter(uc, userID).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 2)
	assert.Equal(t, "Errands", response.Data[0]["name"])
}

func TestCategoryHandler_Update(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	categoryID := uuid.Must(uuid.NewV7())

	t.Run("Success_Returns200", func(t *testing.T) {
		uc := &mocks.MockCategoryUseCase{}
		name := "Renamed"

		uc.On("Update", mock.Anything, userID, categoryID,
			&domain.UpdateCategoryInput{Name: &name}).
			Return(&domain.Category{
				ID:     categoryID,
				UserID: userID,
				Name:   "Renamed",
				Color:  "#9E9E9E",
			}, nil).Once()

		body := `{"name":"Renamed"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/categories/"+categoryID.String(), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newCategoryRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_RenameToTakenName_Returns409", func(t *testing.T) {
		uc := &mocks.MockCategoryUseCase{}
		uc.On("Update", mock.Anything, userID, categoryID, mock.Anything).
			Return(nil, domain.ErrCategoryAlreadyExists).Once()

		body := `{"name":"Taken"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/categories/"+categoryID.String(), bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")

		newCategoryRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestCategoryHandler_Delete(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	categoryID := uuid.Must(uuid.NewV7())

	t.Run("Success_Returns204", func(t *testing.T) {
		uc := &mocks.MockCategoryUseCase{}
		uc.On("Delete", mock.Anything, userID, categoryID).Return(nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/categories/"+categoryID.String(), nil)

		newCategoryRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error_InvalidUUID_Returns422", func(t *testing.T) {
		uc := &mocks.MockCategoryUseCase{}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/categories/not-a-uuid", nil)

		newCategoryRouter(uc, userID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		uc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}
