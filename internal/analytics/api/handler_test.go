package analytics_api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"restaurant-insights/internal/analytics"
	analytics_api "restaurant-insights/internal/analytics/api"
	"restaurant-insights/internal/logger"
	"restaurant-insights/internal/models"
)

// mockStore is a DBLayer stand-in so handler tests can force each error
// path without a database.
type mockStore struct {
	rows     []models.OrderWithRestaurant
	exists   bool
	failWith error
}

func (m *mockStore) FetchOrders(_ context.Context, _ analytics.FilterSpec, _ string) ([]models.OrderWithRestaurant, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.rows, nil
}

func (m *mockStore) RestaurantExists(_ context.Context, _ string) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	return m.exists, nil
}

func setupRouter(store *mockStore) chi.Router {
	handler := analytics_api.NewHandler(analytics.NewService(store), logger.NewLogger())
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func sampleRows() []models.OrderWithRestaurant {
	return []models.OrderWithRestaurant{
		{
			OrderID:        "o1",
			RestaurantID:   "r1",
			OrderAmount:    decimal.RequireFromString("100"),
			OrderedAt:      time.Date(2025, 6, 22, 9, 0, 0, 0, time.UTC),
			RestaurantName: "Bella Napoli",
			Cuisine:        "Italian",
			Location:       "Rome",
		},
	}
}

func TestGetRestaurantTrendsHandler(t *testing.T) {
	t.Run("Missing date range is a 400", func(t *testing.T) {
		r := setupRouter(&mockStore{exists: true})

		req := httptest.NewRequest("GET", "/restaurants/r1/trends", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid filter")
	})

	t.Run("Unknown restaurant is a 404", func(t *testing.T) {
		r := setupRouter(&mockStore{exists: false})

		req := httptest.NewRequest("GET", "/restaurants/nope/trends?from=2025-06-22&to=2025-06-22", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not found")
	})

	t.Run("Storage failure is a 500", func(t *testing.T) {
		r := setupRouter(&mockStore{
			failWith: &analytics.StorageError{Op: "fetch orders", Err: errors.New("connection refused")},
		})

		req := httptest.NewRequest("GET", "/restaurants/r1/trends?from=2025-06-22&to=2025-06-22", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to compute analytics")
	})

	t.Run("Successful trends", func(t *testing.T) {
		r := setupRouter(&mockStore{exists: true, rows: sampleRows()})

		req := httptest.NewRequest("GET", "/restaurants/r1/trends?from=2025-06-22&to=2025-06-22", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"average_order_value":"100"`)
		assert.Contains(t, w.Body.String(), `"2025-06-22"`)
	})
}

func TestGetTopRestaurantsHandler(t *testing.T) {
	t.Run("Missing date range is a 400", func(t *testing.T) {
		r := setupRouter(&mockStore{})

		req := httptest.NewRequest("GET", "/top-restaurants", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid filter")
	})

	t.Run("Storage failure is a 500", func(t *testing.T) {
		r := setupRouter(&mockStore{
			failWith: &analytics.StorageError{Op: "fetch orders", Err: errors.New("connection refused")},
		})

		req := httptest.NewRequest("GET", "/top-restaurants?from=2025-06-22&to=2025-06-22", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Successful ranking", func(t *testing.T) {
		r := setupRouter(&mockStore{rows: sampleRows()})

		req := httptest.NewRequest("GET", "/top-restaurants?from=2025-06-22&to=2025-06-22", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"restaurant_id":"r1"`)
	})
}
