package restaurants

import (
	"context"

	"restaurant-insights/internal/models"
)

const defaultPerPage = 10

// DBLayer is the storage contract for the restaurant listing.
type DBLayer interface {
	List(ctx context.Context, options ListOptions) ([]models.Restaurant, int, error)
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
}

// Service handles restaurant listing operations.
type Service struct {
	db DBLayer
}

// NewService creates a new restaurants service.
func NewService(db DBLayer) *Service {
	return &Service{db: db}
}

// ListResult is a paginated restaurant listing.
type ListResult struct {
	Restaurants []models.Restaurant `json:"restaurants"`
	Total       int                 `json:"total"`
	PerPage     int                 `json:"per_page"`
	Offset      int                 `json:"offset"`
}

// List returns a page of restaurants matching the options.
func (s *Service) List(ctx context.Context, options ListOptions) (*ListResult, error) {
	if options.Limit <= 0 {
		options.Limit = defaultPerPage
	}
	if options.Offset < 0 {
		options.Offset = 0
	}

	restaurants, total, err := s.db.List(ctx, options)
	if err != nil {
		return nil, err
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}

	return &ListResult{
		Restaurants: restaurants,
		Total:       total,
		PerPage:     options.Limit,
		Offset:      options.Offset,
	}, nil
}

// Get fetches a single restaurant by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Restaurant, error) {
	return s.db.GetByID(ctx, id)
}
