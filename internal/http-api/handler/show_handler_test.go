package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fanhub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockShowService mocks the ShowService interface
type MockShowService struct {
	mock.Mock
}

func (m *MockShowService) GetAll(ctx context.Context) ([]models.Show, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Show), args.Error(1)
}

func (m *MockShowService) GetByID(ctx context.Context, id int64) (*models.Show, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Show), args.Error(1)
}

func (m *MockShowService) Create(ctx context.Context, s *models.Show) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShowService) Update(ctx context.Context, id int64, s *models.Show) error {
	args := m.Called(ctx, id, s)
	return args.Error(0)
}

func (m *MockShowService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestShowList_BareArray(t *testing.T) {
	mockSvc := new(MockShowService)
	h := NewShowHandler(mockSvc)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/api/shows"))

	shows := []models.Show{{ID: 1, Title: "Breaking Bad"}, {ID: 2, Title: "Better Call Saul"}}
	mockSvc.On("GetAll", mock.Anything).Return(shows, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/shows", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// top-level array, no wrapper object
	var body []models.Show
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body, 2)
}

func TestShowGet_NotFoundBody(t *testing.T) {
	mockSvc := new(MockShowService)
	h := NewShowHandler(mockSvc)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/api/shows"))

	mockSvc.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/shows/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Show not found"}`, w.Body.String())
}

func TestShowGet_StoreErrorEchoedAt500(t *testing.T) {
	mockSvc := new(MockShowService)
	h := NewShowHandler(mockSvc)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/api/shows"))

	mockSvc.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("connection refused"))

	req, _ := http.NewRequest(http.MethodGet, "/api/shows/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"connection refused"}`, w.Body.String())
}

func TestShowCreate_Returns201(t *testing.T) {
	mockSvc := new(MockShowService)
	h := NewShowHandler(mockSvc)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/api/shows"))

	mockSvc.On("Create", mock.Anything, mock.AnythingOfType("*models.Show")).Return(nil)

	w := postJSON(t, router, "/api/shows", models.Show{Title: "Breaking Bad", Genre: "Drama"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestShowCreate_EmptyTitleAccepted(t *testing.T) {
	mockSvc := new(MockShowService)
	h := NewShowHandler(mockSvc)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/api/shows"))

	mockSvc.On("Create", mock.Anything, mock.AnythingOfType("*models.Show")).Return(nil)

	w := postJSON(t, router, "/api/shows", map[string]interface{}{"description": "no title at all"})
	assert.Equal(t, http.StatusCreated, w.Code)

	mockSvc.AssertExpectations(t)
}

func TestShowDelete_NoContent(t *testing.T) {
	mockSvc := new(MockShowService)
	h := NewShowHandler(mockSvc)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/api/shows"))

	mockSvc.On("Delete", mock.Anything, int64(3)).Return(nil)

	req, _ := http.NewRequest(http.MethodDelete, "/api/shows/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
