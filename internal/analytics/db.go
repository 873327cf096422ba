package analytics

import (
	"context"

	"github.com/uptrace/bun"

	"restaurant-insights/internal/models"
)

// DB implements DBLayer on top of bun. Only the date range and the optional
// restaurant id equality are pushed into SQL, where they map onto the
// ordered_at and (restaurant_id, ordered_at) indexes; every other predicate
// runs in applyFilters so no backend-specific SQL functions are involved.
type DB struct {
	bun *bun.DB
}

// NewDB creates a new analytics DB handler.
func NewDB(db *bun.DB) *DB {
	return &DB{bun: db}
}

// FetchOrders retrieves orders in the spec's date range, joined with their
// restaurant's name, cuisine and location. Orders whose restaurant was
// deleted are excluded by the inner join.
func (db *DB) FetchOrders(ctx context.Context, spec FilterSpec, restaurantID string) ([]models.OrderWithRestaurant, error) {
	q := db.bun.NewSelect().
		TableExpr("orders AS o").
		ColumnExpr("o.id AS order_id").
		ColumnExpr("o.restaurant_id").
		ColumnExpr("o.order_amount").
		ColumnExpr("o.ordered_at").
		ColumnExpr("r.name AS restaurant_name").
		ColumnExpr("r.cuisine").
		ColumnExpr("r.location").
		Join("JOIN restaurants AS r ON r.id = o.restaurant_id").
		Where("o.ordered_at BETWEEN ? AND ?", spec.From, spec.To)

	if restaurantID != "" {
		q = q.Where("o.restaurant_id = ?", restaurantID)
	}

	var rows []models.OrderWithRestaurant
	if err := q.Scan(ctx, &rows); err != nil {
		return nil, &StorageError{Op: "fetch orders", Err: err}
	}
	return rows, nil
}

// RestaurantExists reports whether a restaurant with the given id exists.
func (db *DB) RestaurantExists(ctx context.Context, id string) (bool, error) {
	exists, err := db.bun.NewSelect().
		Model((*models.Restaurant)(nil)).
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return false, &StorageError{Op: "check restaurant", Err: err}
	}
	return exists, nil
}
