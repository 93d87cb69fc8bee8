package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/toeat_restaurants/internal/lookup"
)

// Требует запущенный PostgreSQL: TEST_POSTGRES_DSN="host=localhost port=5432 user=... dbname=... sslmode=disable".
func TestPostgresStorage_Dictionaries(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	ctx := context.Background()
	ps, err := NewPostgresStorage(ctx, dsn)
	require.NoError(t, err)
	defer ps.Close()

	require.NoError(t, ps.EnsureSchema(ctx))
	require.NoError(t, ps.SeedDictionaries(ctx, lookup.Countries(), lookup.RatingColors(), lookup.PriceCategories()))
	// Повторное заполнение не дублирует строки.
	require.NoError(t, ps.SeedDictionaries(ctx, lookup.Countries(), lookup.RatingColors(), lookup.PriceCategories()))

	countries, err := ps.Countries(ctx)
	require.NoError(t, err)
	assert.Equal(t, lookup.Countries(), countries)

	colors, err := ps.RatingColors(ctx)
	require.NoError(t, err)
	assert.Equal(t, lookup.RatingColors(), colors)

	prices, err := ps.PriceCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, lookup.PriceCategories(), prices)
}
