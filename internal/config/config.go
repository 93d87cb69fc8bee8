// Package config предоставляет загрузку конфигурации приложения из переменных окружения.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Источники данных для страниц дашборда.
const (
	SourceCSV           = "csv"
	SourceElasticsearch = "elasticsearch"
)

const envProduction = "production"

// Config содержит все параметры конфигурации приложения.
// Значения загружаются из переменных окружения с fallback на значения по умолчанию.
type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"development"`   // Окружение: development или production
	AppPort  string `envconfig:"APP_PORT" default:"8080"`         // Порт для HTTP сервера
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`        // Уровень логирования zap
	Dataset  string `envconfig:"DATASET_PATH" default:"dataset/zomato.csv"`

	DataSource string `envconfig:"DATA_SOURCE" default:"csv"` // csv или elasticsearch

	ElasticsearchURL       string `envconfig:"ELASTICSEARCH_URL" default:"http://localhost:9200"`
	ElasticsearchIndex     string `envconfig:"ELASTICSEARCH_INDEX" default:"restaurants"`
	ElasticsearchFetchSize int    `envconfig:"ELASTICSEARCH_FETCH_SIZE" default:"10000"`

	PostgresEnabled  bool   `envconfig:"POSTGRES_ENABLED" default:"false"` // Справочники из PostgreSQL
	PostgresHost     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PostgresPort     string `envconfig:"POSTGRES_PORT" default:"5432"`
	PostgresUser     string `envconfig:"POSTGRES_USER" default:"toeat_user"`
	PostgresPassword string `envconfig:"POSTGRES_PASSWORD" default:"toeat_pass"`
	PostgresDB       string `envconfig:"POSTGRES_DB" default:"toeat_db"`
}

// Load загружает конфигурацию из переменных окружения.
// Вне production сначала подхватывается файл .env, если он есть.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != envProduction {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Production сообщает, запущено ли приложение в production окружении.
func (c *Config) Production() bool {
	return c.AppEnv == envProduction
}

// PostgresDSN собирает DSN в формате lib/pq.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresUser,
		c.PostgresPassword,
		c.PostgresDB,
	)
}

func (c *Config) validate() error {
	switch c.DataSource {
	case SourceCSV, SourceElasticsearch:
	default:
		return fmt.Errorf("unknown data source %q", c.DataSource)
	}

	if c.ElasticsearchFetchSize <= 0 {
		return fmt.Errorf("elasticsearch fetch size must be positive, got %d", c.ElasticsearchFetchSize)
	}

	if c.Dataset == "" && c.DataSource == SourceCSV {
		return fmt.Errorf("dataset path is required for csv source")
	}

	return nil
}
