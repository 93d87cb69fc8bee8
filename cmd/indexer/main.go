package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"

	"github.com/akozadaev/toeat_restaurants/internal/config"
	"github.com/akozadaev/toeat_restaurants/internal/dataset"
	"github.com/akozadaev/toeat_restaurants/internal/logger"
	"github.com/akozadaev/toeat_restaurants/internal/lookup"
	"github.com/akozadaev/toeat_restaurants/internal/models"
	"github.com/akozadaev/toeat_restaurants/internal/storage"
	"github.com/akozadaev/toeat_restaurants/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	datasetPath := flag.String("dataset", cfg.Dataset, "path to the Zomato CSV file")
	batch := flag.Int("batch", storage.DefaultBulkBatch, "documents per bulk request")
	mappingPath := flag.String("mapping", "", "index mapping file, embedded mapping when empty")
	restaurantID := flag.Int("id", 0, "reindex a single restaurant by restaurant_id instead of the whole dataset")
	flag.Parse()

	log, err := logger.New(cfg.Production(), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, *datasetPath, *mappingPath, *batch, *restaurantID); err != nil {
		log.Fatal("indexing failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger, datasetPath, mappingPath string, batch, restaurantID int) error {
	started := time.Now()

	restaurants, stats, err := dataset.Load(ctx, datasetPath)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	log.Info("dataset cleaned",
		zap.String("path", datasetPath),
		zap.Int("raw_rows", stats.RawRows),
		zap.Int("cleaned_rows", stats.CleanedRows),
		zap.Int("dropped_rows", stats.Dropped()),
	)

	mapping := migrations.ElasticsearchMapping
	if mappingPath != "" {
		data, err := os.ReadFile(mappingPath)
		if err != nil {
			return fmt.Errorf("failed to read mapping: %w", err)
		}
		mapping = string(data)
	}

	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:         []string{cfg.ElasticsearchURL},
		DisableMetaHeader: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	esStorage := storage.NewElasticsearchStorage(esClient, cfg.ElasticsearchIndex, cfg.ElasticsearchURL, cfg.ElasticsearchFetchSize, log)
	if err := esStorage.CreateIndex(ctx, mapping); err != nil {
		return err
	}

	if restaurantID > 0 {
		restaurant, err := findRestaurant(restaurants, restaurantID)
		if err != nil {
			return err
		}
		if err := esStorage.IndexRestaurant(ctx, restaurant); err != nil {
			return err
		}
		log.Info("restaurant reindexed", zap.Int("restaurant_id", restaurantID), zap.Duration("took", time.Since(started)))
		return nil
	}

	log.Info("indexing restaurants", zap.Int("count", len(restaurants)), zap.Int("batch", batch))
	if err := esStorage.BulkIndexRestaurants(ctx, restaurants, batch); err != nil {
		return err
	}

	if cfg.PostgresEnabled {
		if err := seedDictionaries(ctx, cfg); err != nil {
			return err
		}
		log.Info("dictionaries seeded", zap.String("db", cfg.PostgresDB))
	}

	log.Info("indexing completed", zap.Duration("took", time.Since(started)))
	return nil
}

// findRestaurant ищет ресторан в очищенном наборе. Строки, отброшенные очисткой, не находятся.
func findRestaurant(restaurants []models.Restaurant, id int) (*models.Restaurant, error) {
	for i := range restaurants {
		if restaurants[i].ID == id {
			return &restaurants[i], nil
		}
	}
	return nil, fmt.Errorf("restaurant %d: %w", id, storage.ErrRestaurantNotFound)
}

func seedDictionaries(ctx context.Context, cfg *config.Config) error {
	pgStorage, err := storage.NewPostgresStorage(ctx, cfg.PostgresDSN())
	if err != nil {
		return err
	}
	defer pgStorage.Close()

	if err := pgStorage.EnsureSchema(ctx); err != nil {
		return err
	}
	return pgStorage.SeedDictionaries(ctx, lookup.Countries(), lookup.RatingColors(), lookup.PriceCategories())
}
