package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, SourceCSV, cfg.DataSource)
	assert.Equal(t, "restaurants", cfg.ElasticsearchIndex)
	assert.Equal(t, 10000, cfg.ElasticsearchFetchSize)
	assert.False(t, cfg.PostgresEnabled)
	assert.True(t, cfg.Production())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATA_SOURCE", "elasticsearch")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceElasticsearch, cfg.DataSource)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.True(t, cfg.PostgresEnabled)
}

func TestLoad_UnknownSource(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATA_SOURCE", "parquet")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown data source")
}

func TestLoad_NonPositiveFetchSize(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ELASTICSEARCH_FETCH_SIZE", "0")

	_, err := Load()
	require.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		PostgresHost:     "db",
		PostgresPort:     "5433",
		PostgresUser:     "u",
		PostgresPassword: "p",
		PostgresDB:       "d",
	}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=d sslmode=disable", cfg.PostgresDSN())
}
