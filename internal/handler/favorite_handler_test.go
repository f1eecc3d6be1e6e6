package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moviehub/internal/handler"
	"moviehub/internal/middleware"
	"moviehub/internal/models"
	"moviehub/internal/repository"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) Add(ctx context.Context, userID, movieID int64) (*models.FavoriteItem, error) {
	args := m.Called(ctx, userID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FavoriteItem), args.Error(1)
}

func (m *MockFavoriteService) Remove(ctx context.Context, userID, movieID int64) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *MockFavoriteService) List(ctx context.Context, userID int64) (*models.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func fakeAuth(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}

func setupFavoriteRouter(mockService *MockFavoriteService, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rg := r.Group("/api/favorites")
	if userID != 0 {
		rg.Use(fakeAuth(userID))
	}
	handler.NewFavoriteHandler(mockService).RegisterRoutes(rg)
	return r
}

func TestFavoriteHandler_List(t *testing.T) {
	mockService := new(MockFavoriteService)
	r := setupFavoriteRouter(mockService, 9)

	fav := &models.Favorite{
		ID:     1,
		UserID: 9,
		Items: []models.FavoriteItem{
			{ID: 1, FavoriteID: 1, MovieID: 4},
			{ID: 2, FavoriteID: 1, MovieID: 7},
		},
	}
	mockService.On("List", mock.Anything, int64(9)).Return(fav, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/favorites/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 2, resp["total"])
	mockService.AssertExpectations(t)
}

func TestFavoriteHandler_Add(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockFavoriteService)
		r := setupFavoriteRouter(mockService, 9)

		item := &models.FavoriteItem{ID: 3, FavoriteID: 1, MovieID: 42}
		mockService.On("Add", mock.Anything, int64(9), int64(42)).Return(item, nil).Once()

		body, _ := json.Marshal(map[string]int64{"movie_id": 42})
		req, _ := http.NewRequest(http.MethodPost, "/api/favorites/items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockService := new(MockFavoriteService)
		r := setupFavoriteRouter(mockService, 9)

		mockService.On("Add", mock.Anything, int64(9), int64(42)).
			Return(nil, service.ErrAlreadyFavorited).Once()

		body, _ := json.Marshal(map[string]int64{"movie_id": 42})
		req, _ := http.NewRequest(http.MethodPost, "/api/favorites/items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("NoAuth", func(t *testing.T) {
		mockService := new(MockFavoriteService)
		r := setupFavoriteRouter(mockService, 0)

		body, _ := json.Marshal(map[string]int64{"movie_id": 42})
		req, _ := http.NewRequest(http.MethodPost, "/api/favorites/items", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Add")
	})
}

func TestFavoriteHandler_Remove(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockFavoriteService)
		r := setupFavoriteRouter(mockService, 9)

		mockService.On("Remove", mock.Anything, int64(9), int64(42)).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/favorites/items/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("NeverAdded", func(t *testing.T) {
		mockService := new(MockFavoriteService)
		r := setupFavoriteRouter(mockService, 9)

		mockService.On("Remove", mock.Anything, int64(9), int64(42)).
			Return(repository.ErrNotFound).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/api/favorites/items/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertExpectations(t)
	})
}
