package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/akozadaev/toeat_restaurants/internal/dataset"
	"github.com/akozadaev/toeat_restaurants/internal/models"
)

// Source отдает очищенные записи для одного рендера страницы.
type Source interface {
	Restaurants(ctx context.Context) ([]models.Restaurant, error)
}

// Dictionaries отдает справочники набора данных.
// Реализуется PostgresStorage и lookup.Static.
type Dictionaries interface {
	Countries(ctx context.Context) ([]models.Country, error)
	RatingColors(ctx context.Context) ([]models.RatingColor, error)
	PriceCategories(ctx context.Context) ([]models.PriceCategory, error)
}

// LoadObserver получает результат каждой загрузки набора данных.
type LoadObserver interface {
	ObserveLoad(source string, started time.Time, stats dataset.Stats, err error)
}

// CSVSource читает и очищает CSV файл заново при каждом вызове.
// Состояние между запросами не хранится.
type CSVSource struct {
	path     string
	log      *zap.Logger
	observer LoadObserver
}

// NewCSVSource создает источник над CSV файлом. observer может быть nil.
func NewCSVSource(path string, log *zap.Logger, observer LoadObserver) *CSVSource {
	return &CSVSource{
		path:     path,
		log:      log,
		observer: observer,
	}
}

// Restaurants загружает набор данных через полный конвейер очистки.
func (s *CSVSource) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	started := time.Now()
	restaurants, stats, err := dataset.Load(ctx, s.path)
	if s.observer != nil {
		s.observer.ObserveLoad("csv", started, stats, err)
	}
	if err != nil {
		return nil, err
	}

	s.log.Debug("dataset loaded",
		zap.String("path", s.path),
		zap.Int("raw_rows", stats.RawRows),
		zap.Int("cleaned_rows", stats.CleanedRows),
		zap.Duration("took", time.Since(started)),
	)
	return restaurants, nil
}
