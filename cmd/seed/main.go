package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"restaurant-insights/internal/config"
	"restaurant-insights/internal/logger"
	"restaurant-insights/internal/models"
)

// Fixture ids are json.Number so both numeric and string ids are accepted;
// they are stored as opaque strings.
type restaurantFixture struct {
	ID       json.Number `json:"id"`
	Name     string      `json:"name"`
	Location string      `json:"location"`
	Cuisine  string      `json:"cuisine"`
}

type orderFixture struct {
	ID           json.Number `json:"id"`
	RestaurantID json.Number `json:"restaurant_id"`
	OrderAmount  json.Number `json:"order_amount"`
	OrderTime    string      `json:"order_time"`
}

var orderTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

func parseOrderTime(s string) (time.Time, error) {
	for _, layout := range orderTimeLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized order_time %q", s)
}

func main() {
	restaurantsPath := flag.String("restaurants", "fixtures/restaurants.json", "restaurants fixture file")
	ordersPath := flag.String("orders", "fixtures/orders.json", "orders fixture file")
	flag.Parse()

	log := logger.NewLogger()
	defer log.Close()

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	}
	cfg := config.Load()

	ctx := context.Background()

	sqldb, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to open PostgreSQL: %v", err))
	}
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	restaurants, err := loadRestaurants(*restaurantsPath)
	if err != nil {
		log.Fatal("SEED", err.Error())
	}
	orders, err := loadOrders(*ordersPath)
	if err != nil {
		log.Fatal("SEED", err.Error())
	}

	if _, err := db.NewInsert().Model(&restaurants).Exec(ctx); err != nil {
		log.Fatal("SEED", fmt.Sprintf("Failed to insert restaurants: %v", err))
	}
	log.LogDatabase("INSERT", "restaurants", fmt.Sprintf("Inserted %d rows", len(restaurants)))

	if _, err := db.NewInsert().Model(&orders).Exec(ctx); err != nil {
		log.Fatal("SEED", fmt.Sprintf("Failed to insert orders: %v", err))
	}
	log.LogDatabase("INSERT", "orders", fmt.Sprintf("Inserted %d rows", len(orders)))
}

func loadRestaurants(path string) ([]models.Restaurant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fixtures []restaurantFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	restaurants := make([]models.Restaurant, 0, len(fixtures))
	for _, f := range fixtures {
		id := f.ID.String()
		if id == "" {
			id = uuid.New().String()
		}
		restaurants = append(restaurants, models.Restaurant{
			ID:        id,
			Name:      f.Name,
			Location:  f.Location,
			Cuisine:   f.Cuisine,
			CreatedAt: time.Now().UTC(),
		})
	}
	return restaurants, nil
}

func loadOrders(path string) ([]models.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fixtures []orderFixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	orders := make([]models.Order, 0, len(fixtures))
	for _, f := range fixtures {
		id := f.ID.String()
		if id == "" {
			id = uuid.New().String()
		}
		amount, err := decimal.NewFromString(f.OrderAmount.String())
		if err != nil {
			return nil, fmt.Errorf("order %s: bad order_amount %q", id, f.OrderAmount)
		}
		orderedAt, err := parseOrderTime(f.OrderTime)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", id, err)
		}
		orders = append(orders, models.Order{
			ID:           id,
			RestaurantID: f.RestaurantID.String(),
			OrderAmount:  amount,
			OrderedAt:    orderedAt,
		})
	}
	return orders, nil
}
