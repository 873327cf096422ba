package restaurants

import (
	"context"
	"strings"

	"github.com/uptrace/bun"

	"restaurant-insights/internal/models"
)

// RestaurantSortField defines the valid fields for sorting restaurants.
type RestaurantSortField string

const (
	SortByName     RestaurantSortField = "name"
	SortByLocation RestaurantSortField = "location"
	SortByCuisine  RestaurantSortField = "cuisine"
	SortByCreated  RestaurantSortField = "created_at"
)

// ListOptions contains options for searching, filtering, sorting and
// paginating the restaurant listing.
type ListOptions struct {
	Search   string
	Cuisine  string
	Location string
	SortBy   string
	SortDesc bool
	Limit    int
	Offset   int
}

// DB handles restaurant database operations.
type DB struct {
	bun *bun.DB
}

// NewDB creates a new restaurants DB handler.
func NewDB(db *bun.DB) *DB {
	return &DB{bun: db}
}

// List returns the restaurants matching the options plus the total match
// count before pagination.
func (db *DB) List(ctx context.Context, options ListOptions) ([]models.Restaurant, int, error) {
	var restaurants []models.Restaurant
	q := db.bun.NewSelect().Model(&restaurants)

	// Free-text search spans name, cuisine and location. LIKE wildcards in
	// the input are escaped so "%" and "_" match only their literal selves.
	if options.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(options.Search)) + "%"
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern).
				WhereOr(`LOWER(cuisine) LIKE ? ESCAPE '\'`, pattern).
				WhereOr(`LOWER(location) LIKE ? ESCAPE '\'`, pattern)
		})
	}

	if options.Cuisine != "" {
		q = q.Where("cuisine = ?", options.Cuisine)
	}
	if options.Location != "" {
		q = q.Where("location = ?", options.Location)
	}

	direction := "ASC"
	if options.SortDesc {
		direction = "DESC"
	}
	switch RestaurantSortField(strings.ToLower(options.SortBy)) {
	case SortByName:
		q = q.Order("name " + direction)
	case SortByLocation:
		q = q.Order("location " + direction)
	case SortByCuisine:
		q = q.Order("cuisine " + direction)
	case SortByCreated:
		q = q.Order("created_at " + direction)
	default:
		// Stable default so pagination never shuffles rows.
		q = q.Order("id " + direction)
	}

	if options.Limit > 0 {
		q = q.Limit(options.Limit)
	}
	if options.Offset > 0 {
		q = q.Offset(options.Offset)
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return restaurants, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// GetByID fetches one restaurant by its id.
func (db *DB) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := db.bun.NewSelect().
		Model(&restaurant).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}
