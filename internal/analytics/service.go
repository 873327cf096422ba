package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"restaurant-insights/internal/models"
)

// DBLayer is the record store contract the aggregation engine reads from.
type DBLayer interface {
	FetchOrders(ctx context.Context, spec FilterSpec, restaurantID string) ([]models.OrderWithRestaurant, error)
	RestaurantExists(ctx context.Context, id string) (bool, error)
}

// Service runs the filtered aggregations. It holds no per-request state, so
// concurrent requests never interfere; everything is recomputed per call
// from an immutable snapshot of the store.
type Service struct {
	db DBLayer
}

// NewService creates a new analytics service.
func NewService(db DBLayer) *Service {
	return &Service{db: db}
}

// TrendsResult is the single-restaurant trends payload: the daily series,
// the overall average order value, and the per-date peak ordering hour.
type TrendsResult struct {
	Daily             []DailyBucket         `json:"daily"`
	AverageOrderValue decimal.Decimal       `json:"average_order_value"`
	DailyPeakHours    map[string]HourBucket `json:"daily_peak_hours"`
}

// ComputeTrends runs the daily series and peak-hour aggregations for one
// restaurant over the filtered working set. It returns NotFoundError when no
// restaurant with the given id exists, so callers can distinguish that from
// an empty result.
func (s *Service) ComputeTrends(ctx context.Context, spec FilterSpec, restaurantID string) (*TrendsResult, error) {
	exists, err := s.db.RestaurantExists(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &NotFoundError{RestaurantID: restaurantID}
	}

	rows, err := s.db.FetchOrders(ctx, spec, restaurantID)
	if err != nil {
		return nil, err
	}
	matched := applyFilters(rows, spec)

	return &TrendsResult{
		Daily:             dailySeries(matched),
		AverageOrderValue: averageOrderValue(matched),
		DailyPeakHours:    peakHours(matched),
	}, nil
}

// ComputeTopRestaurants ranks all restaurants matching the filters by summed
// revenue and returns at most three rows. Fewer matching restaurants is a
// success state, not an error.
func (s *Service) ComputeTopRestaurants(ctx context.Context, spec FilterSpec) ([]RestaurantRevenueRow, error) {
	rows, err := s.db.FetchOrders(ctx, spec, "")
	if err != nil {
		return nil, err
	}
	return topRestaurants(applyFilters(rows, spec)), nil
}
