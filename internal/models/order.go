package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Order is an immutable order record. Amounts are fixed-point decimals so
// repeated summation never drifts the way float64 would.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID           string          `bun:"id,pk" json:"id"`
	RestaurantID string          `bun:"restaurant_id" json:"restaurant_id"`
	OrderAmount  decimal.Decimal `bun:"order_amount,type:decimal(10,2)" json:"order_amount"`
	OrderedAt    time.Time       `bun:"ordered_at" json:"ordered_at"`
}

// OrderWithRestaurant is one row of the orders/restaurants join that the
// analytics engine filters and aggregates over.
type OrderWithRestaurant struct {
	OrderID        string          `bun:"order_id"`
	RestaurantID   string          `bun:"restaurant_id"`
	OrderAmount    decimal.Decimal `bun:"order_amount"`
	OrderedAt      time.Time       `bun:"ordered_at"`
	RestaurantName string          `bun:"restaurant_name"`
	Cuisine        string          `bun:"cuisine"`
	Location       string          `bun:"location"`
}
