package dataset

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/akozadaev/toeat_restaurants/internal/models"
)

// Stats описывает размер набора данных до и после очистки.
type Stats struct {
	RawRows     int
	CleanedRows int
}

// Dropped возвращает число строк, отброшенных очисткой.
func (s Stats) Dropped() int {
	return s.RawRows - s.CleanedRows
}

// Load читает CSV файл и прогоняет его через весь конвейер:
// чтение, переименование колонок, справочники, очистка, типизация.
func Load(ctx context.Context, path string) ([]models.Restaurant, Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return LoadReader(ctx, f)
}

// LoadReader выполняет конвейер Load над произвольным источником CSV.
func LoadReader(ctx context.Context, r io.Reader) ([]models.Restaurant, Stats, error) {
	raw, err := ReadCSV(r)
	if err != nil {
		return nil, Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, Stats{}, err
	}

	RenameColumns(raw)
	if err := Enrich(raw); err != nil {
		return nil, Stats{}, fmt.Errorf("failed to enrich dataset: %w", err)
	}

	cleaned := Clean(raw)
	stats := Stats{RawRows: raw.Len(), CleanedRows: cleaned.Len()}

	restaurants, err := Decode(cleaned)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to decode dataset: %w", err)
	}

	return restaurants, stats, nil
}
