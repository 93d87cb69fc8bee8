// @title           ToEat Restaurants API
// @version         1.0
// @description     REST API дашборда ресторанов Zomato. Набор данных загружается и очищается заново на каждый запрос, агрегаты считаются по выбранным странам и кухням.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  akozadaev@inbox.ru
// @contact.url    https://github.com/akozadaev/toeat_restaurants

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @schemes   http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/akozadaev/toeat_restaurants/docs" // swagger docs
	"github.com/akozadaev/toeat_restaurants/internal/config"
	"github.com/akozadaev/toeat_restaurants/internal/handlers"
	"github.com/akozadaev/toeat_restaurants/internal/logger"
	"github.com/akozadaev/toeat_restaurants/internal/lookup"
	"github.com/akozadaev/toeat_restaurants/internal/metrics"
	"github.com/akozadaev/toeat_restaurants/internal/storage"
	"github.com/akozadaev/toeat_restaurants/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Production(), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	m := metrics.New()

	source, err := newSource(cfg, log, m)
	if err != nil {
		log.Fatal("failed to initialize data source", zap.String("source", cfg.DataSource), zap.Error(err))
	}

	// Справочники: PostgreSQL, если включен, иначе встроенные таблицы
	var dicts storage.Dictionaries = lookup.Static{}
	if cfg.PostgresEnabled {
		pgStorage, err := openPostgres(cfg)
		if err != nil {
			log.Fatal("failed to initialize PostgreSQL", zap.Error(err))
		}
		defer pgStorage.Close()
		dicts = pgStorage
		log.Info("connected to PostgreSQL", zap.String("host", cfg.PostgresHost), zap.String("db", cfg.PostgresDB))
	}

	h := handlers.NewHandlers(source, dicts, log)

	// Настройка роутера
	router := mux.NewRouter()
	router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	h.Register(router)

	// Настройка CORS
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})
	router.Use(m.Middleware)

	// Настройка сервера
	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("server starting", zap.String("port", cfg.AppPort), zap.String("source", cfg.DataSource))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Ожидание сигнала для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

// newSource выбирает источник записей по DATA_SOURCE.
func newSource(cfg *config.Config, log *zap.Logger, m *metrics.Metrics) (storage.Source, error) {
	if cfg.DataSource == config.SourceCSV {
		log.Info("serving dataset from csv", zap.String("path", cfg.Dataset))
		return storage.NewCSVSource(cfg.Dataset, log, m), nil
	}

	// Отключаем мета заголовки для совместимости с OpenSearch
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:         []string{cfg.ElasticsearchURL},
		DisableMetaHeader: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	esStorage := storage.NewElasticsearchStorage(esClient, cfg.ElasticsearchIndex, cfg.ElasticsearchURL, cfg.ElasticsearchFetchSize, log).
		WithObserver(m)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Индекс создается заранее, чтобы страницы не падали до первого запуска индексатора
	if err := esStorage.CreateIndex(ctx, migrations.ElasticsearchMapping); err != nil {
		log.Warn("could not create index", zap.String("index", cfg.ElasticsearchIndex), zap.Error(err))
	} else {
		log.Info("elasticsearch index created/verified", zap.String("index", cfg.ElasticsearchIndex))
	}

	return esStorage, nil
}

func openPostgres(cfg *config.Config) (*storage.PostgresStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pgStorage, err := storage.NewPostgresStorage(ctx, cfg.PostgresDSN())
	if err != nil {
		return nil, err
	}

	if err := pgStorage.EnsureSchema(ctx); err != nil {
		pgStorage.Close()
		return nil, err
	}

	if err := pgStorage.SeedDictionaries(ctx, lookup.Countries(), lookup.RatingColors(), lookup.PriceCategories()); err != nil {
		pgStorage.Close()
		return nil, err
	}

	return pgStorage, nil
}
