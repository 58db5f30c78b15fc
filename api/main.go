package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/rogerio-castellano/order-analytics/docs"
	"github.com/rogerio-castellano/order-analytics/internal/config"
	"github.com/rogerio-castellano/order-analytics/internal/csvdata"
	"github.com/rogerio-castellano/order-analytics/internal/db"
	api "github.com/rogerio-castellano/order-analytics/internal/http"
	"github.com/rogerio-castellano/order-analytics/internal/http/handlers"
	rl "github.com/rogerio-castellano/order-analytics/internal/http/rate_limiter"
	"github.com/rogerio-castellano/order-analytics/internal/redissvc"
	"github.com/rogerio-castellano/order-analytics/internal/repo"
)

// @title Order Analytics API
// @version 1.0
// @description Aggregate sales, cancellation, return, and profit metrics over a static e-commerce dataset.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	go rl.StartVisitorCleanupLoop()

	datasetRepo, err := buildDatasetRepo(cfg)
	if err != nil {
		log.Fatalf("❌ Could not load dataset: %v", err)
	}
	handlers.SetDatasetRepo(datasetRepo)

	if cfg.ReferenceDate != "" {
		ref, _ := time.Parse("2006-01-02", cfg.ReferenceDate)
		handlers.SetFixedReferenceDate(ref)
	}

	if cfg.RedisAddr != "" {
		ctx := context.Background()
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		handlers.SetRedisService(redissvc.NewRedisService(rdb, ctx, cfg.CacheTTL))
	}

	r := api.NewRouter()
	log.Printf("✅ Server running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}

// buildDatasetRepo loads the session dataset from Postgres when a database
// URL is configured, otherwise from the CSV data directory.
func buildDatasetRepo(cfg config.Config) (repo.DatasetRepository, error) {
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return repo.NewPostgresDatasetRepository(database)
	}

	ds, err := csvdata.Load(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return repo.NewInMemoryDatasetRepository(ds), nil
}
