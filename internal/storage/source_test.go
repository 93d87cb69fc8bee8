package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/akozadaev/toeat_restaurants/internal/dataset"
)

type recordingObserver struct {
	source string
	stats  dataset.Stats
	err    error
	calls  int
}

func (o *recordingObserver) ObserveLoad(source string, _ time.Time, stats dataset.Stats, err error) {
	o.source = source
	o.stats = stats
	o.err = err
	o.calls++
}

func TestCSVSource_Restaurants(t *testing.T) {
	obs := &recordingObserver{}
	src := NewCSVSource("testdata/zomato_sample.csv", zap.NewNop(), obs)

	rs, err := src.Restaurants(context.Background())
	require.NoError(t, err)
	assert.Len(t, rs, 5)

	assert.Equal(t, 1, obs.calls)
	assert.Equal(t, "csv", obs.source)
	assert.Equal(t, 10, obs.stats.RawRows)
	assert.Equal(t, 5, obs.stats.CleanedRows)

	// Каждый вызов перечитывает файл.
	_, err = src.Restaurants(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, obs.calls)
}

func TestCSVSource_MissingFile(t *testing.T) {
	obs := &recordingObserver{}
	src := NewCSVSource("testdata/absent.csv", zap.NewNop(), obs)

	_, err := src.Restaurants(context.Background())
	require.Error(t, err)
	assert.Error(t, obs.err)
}

func TestCSVSource_NilObserver(t *testing.T) {
	src := NewCSVSource("testdata/zomato_sample.csv", zap.NewNop(), nil)

	_, err := src.Restaurants(context.Background())
	assert.NoError(t, err)
}
