package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/akozadaev/toeat_restaurants/internal/models"
)

// Схема справочников. Повторный запуск не меняет существующие таблицы.
const dictionariesSchema = `
CREATE TABLE IF NOT EXISTS countries (
	code INTEGER PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS rating_colors (
	code TEXT PRIMARY KEY,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS price_categories (
	price_range INTEGER PRIMARY KEY,
	label TEXT NOT NULL
);`

// PostgresStorage предоставляет методы для работы со справочниками в PostgreSQL.
type PostgresStorage struct {
	db *sql.DB // Подключение к базе данных PostgreSQL
}

// NewPostgresStorage создает новый экземпляр PostgresStorage и устанавливает подключение к БД.
// DSN должен быть в формате: "host=... port=... user=... password=... dbname=... sslmode=..."
func NewPostgresStorage(ctx context.Context, dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStorage{db: db}, nil
}

// Close закрывает подключение к базе данных PostgreSQL.
func (ps *PostgresStorage) Close() error {
	return ps.db.Close()
}

// EnsureSchema создает таблицы справочников, если их нет.
func (ps *PostgresStorage) EnsureSchema(ctx context.Context) error {
	if _, err := ps.db.ExecContext(ctx, dictionariesSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SeedDictionaries записывает справочники одной транзакцией.
// Существующие записи обновляются по первичному ключу.
func (ps *PostgresStorage) SeedDictionaries(ctx context.Context, countries []models.Country, colors []models.RatingColor, prices []models.PriceCategory) (err error) {
	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, c := range countries {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO countries (code, name) VALUES ($1, $2)
			 ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name`,
			c.Code, c.Name,
		); err != nil {
			return fmt.Errorf("failed to upsert country %d: %w", c.Code, err)
		}
	}

	for _, c := range colors {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO rating_colors (code, name) VALUES ($1, $2)
			 ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name`,
			c.Code, c.Name,
		); err != nil {
			return fmt.Errorf("failed to upsert rating color %s: %w", c.Code, err)
		}
	}

	for _, p := range prices {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO price_categories (price_range, label) VALUES ($1, $2)
			 ON CONFLICT (price_range) DO UPDATE SET label = EXCLUDED.label`,
			p.PriceRange, p.Label,
		); err != nil {
			return fmt.Errorf("failed to upsert price category %d: %w", p.PriceRange, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Countries возвращает справочник стран, отсортированный по коду.
func (ps *PostgresStorage) Countries(ctx context.Context) ([]models.Country, error) {
	query := `SELECT code, name FROM countries ORDER BY code`

	rows, err := ps.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	var countries []models.Country
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		countries = append(countries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return countries, nil
}

// RatingColors возвращает справочник цветов рейтинга, отсортированный по коду.
func (ps *PostgresStorage) RatingColors(ctx context.Context) ([]models.RatingColor, error) {
	query := `SELECT code, name FROM rating_colors ORDER BY code`

	rows, err := ps.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rating colors: %w", err)
	}
	defer rows.Close()

	var colors []models.RatingColor
	for rows.Next() {
		var c models.RatingColor
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan rating color: %w", err)
		}
		colors = append(colors, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return colors, nil
}

// PriceCategories возвращает справочник ценовых категорий.
func (ps *PostgresStorage) PriceCategories(ctx context.Context) ([]models.PriceCategory, error) {
	query := `SELECT price_range, label FROM price_categories ORDER BY price_range`

	rows, err := ps.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query price categories: %w", err)
	}
	defer rows.Close()

	var prices []models.PriceCategory
	for rows.Next() {
		var p models.PriceCategory
		if err := rows.Scan(&p.PriceRange, &p.Label); err != nil {
			return nil, fmt.Errorf("failed to scan price category: %w", err)
		}
		prices = append(prices, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return prices, nil
}
