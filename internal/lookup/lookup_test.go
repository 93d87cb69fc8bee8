package lookup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryName(t *testing.T) {
	name, err := CountryName(30)
	require.NoError(t, err)
	assert.Equal(t, "Brazil", name)

	name, err = CountryName(216)
	require.NoError(t, err)
	assert.Equal(t, "United States of America", name)
}

func TestCountryName_Unknown(t *testing.T) {
	_, err := CountryName(999)
	require.ErrorIs(t, err, ErrUnknownCountry)
}

func TestPriceCategory(t *testing.T) {
	tests := []struct {
		priceRange int
		want       string
	}{
		{1, PriceCheap},
		{2, PriceNormal},
		{3, PriceExpensive},
		{4, PriceGourmet},
		{0, PriceGourmet},
		{7, PriceGourmet},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PriceCategory(tt.priceRange), "price range %d", tt.priceRange)
	}
}

func TestColorName(t *testing.T) {
	name, err := ColorName("3F7E00")
	require.NoError(t, err)
	assert.Equal(t, "darkgreen", name)

	// Два кода сводятся к одному цвету маркера.
	a, _ := ColorName("CBCBC8")
	b, _ := ColorName("FF7800")
	assert.Equal(t, a, b)
}

func TestColorName_Unknown(t *testing.T) {
	_, err := ColorName("000000")
	require.ErrorIs(t, err, ErrUnknownRatingColor)
}

func TestDictionariesSorted(t *testing.T) {
	cs := Countries()
	require.Len(t, cs, 15)
	for i := 1; i < len(cs); i++ {
		assert.Less(t, cs[i-1].Code, cs[i].Code)
	}

	rc := RatingColors()
	require.Len(t, rc, 7)
	for i := 1; i < len(rc); i++ {
		assert.Less(t, rc[i-1].Code, rc[i].Code)
	}

	assert.Len(t, PriceCategories(), 4)
}

func TestStatic(t *testing.T) {
	var s Static
	cs, err := s.Countries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Countries(), cs)
}
