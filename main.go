package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"restaurant-insights/internal/analytics"
	analytics_api "restaurant-insights/internal/analytics/api"
	"restaurant-insights/internal/config"
	"restaurant-insights/internal/database/migrations"
	"restaurant-insights/internal/logger"
	"restaurant-insights/internal/restaurants"
	restaurants_api "restaurant-insights/internal/restaurants/api"
)

func connectPostgres(cfg *config.Config, log *logger.Logger) *bun.DB {
	var sqldb *sql.DB
	var err error
	maxRetries := 5

	for i := 0; i < maxRetries; i++ {
		log.Info("DATABASE", fmt.Sprintf("Attempting to connect to PostgreSQL (attempt %d/%d)", i+1, maxRetries))
		sqldb, err = sql.Open("postgres", cfg.Database.DSN)
		if err == nil {
			err = sqldb.Ping()
		}
		if err == nil {
			break
		}
		log.Error("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}
	if err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err))
	}

	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	log.Info("DATABASE", "PostgreSQL connection successful")
	return bun.NewDB(sqldb, pgdialect.New())
}

func requestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.LogAPI(r.Method, r.URL.Path, strconv.Itoa(ww.Status()), time.Since(start).String())
		})
	}
}

func connectRedis(ctx context.Context, cfg *config.Config, log *logger.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("REDIS", fmt.Sprintf("Redis unavailable, response caching disabled: %v", err))
		return nil
	}
	log.Info("REDIS", fmt.Sprintf("Redis connection successful to %s", cfg.Redis.Addr))
	return client
}

func main() {
	log := logger.NewLogger()
	defer log.Close()

	log.Info("APP", "Starting Restaurant Insights service")

	if err := godotenv.Load(); err != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	}
	cfg := config.Load()

	ctx := context.Background()

	bunDB := connectPostgres(cfg, log)
	defer bunDB.Close()

	runner := migrations.NewRunner(bunDB, "./migrations")
	if err := runner.Up(); err != nil {
		log.Fatal("DATABASE", fmt.Sprintf("Migrations failed: %v", err))
	}
	if version, _, err := runner.Version(); err == nil {
		log.Info("DATABASE", fmt.Sprintf("Schema at version %d", version))
	}

	analyticsService := analytics.NewService(analytics.NewDB(bunDB))
	restaurantService := restaurants.NewService(restaurants.NewDB(bunDB))

	var analyticsHandler *analytics_api.Handler
	if cfg.Redis.Enabled {
		if redisClient := connectRedis(ctx, cfg, log); redisClient != nil {
			defer redisClient.Close()
			cache := analytics.NewCache(redisClient, cfg.Analytics.CacheTTL)
			analyticsHandler = analytics_api.NewHandlerWithCache(analyticsService, log, cache)
		}
	}
	if analyticsHandler == nil {
		analyticsHandler = analytics_api.NewHandler(analyticsService, log)
	}

	restaurantHandler := restaurants_api.NewHandler(restaurantService, log)

	log.Info("HTTP", "Setting up router")
	r := chi.NewRouter()
	r.Use(requestLogger(log))

	r.Route("/api", func(r chi.Router) {
		restaurantHandler.RegisterRoutes(r)
		analyticsHandler.RegisterRoutes(r)
	})
	log.Info("ROUTER", "Restaurant and analytics routes registered under /api")

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("Restaurant Insights running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		log.Info("HTTP", "Service shutdown complete")
	}
}
