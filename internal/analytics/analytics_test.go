package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozadaev/toeat_restaurants/internal/models"
)

func restaurant(id int, name, country, city, cuisine string, cost float64, currency string, rating float64, votes int) models.Restaurant {
	return models.Restaurant{
		ID:                id,
		Name:              name,
		Country:           country,
		City:              city,
		Cuisine:           cuisine,
		AverageCostForTwo: cost,
		Currency:          currency,
		AggregateRating:   rating,
		Votes:             votes,
		RatingColorName:   "green",
		Coordinates:       models.GeoPoint{Lat: float64(id), Lon: -float64(id)},
	}
}

func fixture() []models.Restaurant {
	return []models.Restaurant{
		restaurant(1, "A", "Brazil", "Rio", "Brazilian", 100, "R$", 4.5, 10),
		restaurant(2, "B", "Brazil", "Rio", "Italian", 200, "R$", 4.9, 20),
		restaurant(3, "C", "Brazil", "Sao Paulo", "Italian", 150, "R$", 2.0, 30),
		restaurant(4, "D", "England", "London", "British", 40, "£", 3.9, 5),
		restaurant(5, "E", "England", "London", "Italian", 60, "£", 4.9, 15),
		restaurant(6, "F", "Qatar", "Doha", "Arabian", 300, "QR", 4.1, 40),
		restaurant(7, "G", "India", "Delhi", "North Indian", 500, "Rs", 2.4, 0),
	}
}

func keys(vs []models.GroupValue) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Key
	}
	return out
}

func values(vs []models.GroupValue) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Value
	}
	return out
}

func TestByCountries(t *testing.T) {
	rs := fixture()

	got := ByCountries(rs, DefaultCountries)
	assert.Len(t, got, 6)
	for _, r := range got {
		assert.NotEqual(t, "India", r.Country)
	}

	assert.Empty(t, ByCountries(rs, nil))
	assert.Len(t, rs, 7, "input must not be modified")
}

func TestByCuisines(t *testing.T) {
	got := ByCuisines(fixture(), []string{"Italian"})
	assert.Len(t, got, 3)
}

func TestOptions(t *testing.T) {
	rs := fixture()
	assert.Equal(t, []string{"Brazil", "England", "Qatar", "India"}, CountryOptions(rs))
	assert.Equal(t, []string{"Brazilian", "Italian", "British", "Arabian", "North Indian"}, CuisineOptions(rs))
	assert.Empty(t, CountryOptions(nil))
}

func TestOverview(t *testing.T) {
	got := Overview(fixture())
	assert.Equal(t, models.Overview{
		Countries:   4,
		Restaurants: 7,
		Cities:      5,
		Votes:       120,
		Cuisines:    5,
	}, got)

	assert.Equal(t, models.Overview{}, Overview(nil))
}

func TestRestaurantsPerCountry(t *testing.T) {
	got := RestaurantsPerCountry(fixture())
	assert.Equal(t, []string{"Brazil", "England", "India", "Qatar"}, keys(got))
	assert.Equal(t, []float64{3, 2, 1, 1}, values(got))
}

func TestCitiesPerCountry(t *testing.T) {
	got := CitiesPerCountry(fixture())
	assert.Equal(t, []string{"Brazil", "England", "India", "Qatar"}, keys(got))
	assert.Equal(t, []float64{2, 1, 1, 1}, values(got))
}

func TestMeanVotesPerCountry(t *testing.T) {
	got := MeanVotesPerCountry(fixture())
	assert.Equal(t, []string{"Brazil", "England", "India", "Qatar"}, keys(got))
	assert.Equal(t, []float64{20, 10, 0, 40}, values(got))
}

func TestMeanCostPerCountryCurrency(t *testing.T) {
	got := MeanCostPerCountryCurrency(fixture())
	require.Len(t, got, 4)
	assert.Equal(t, models.GroupValue{Key: "Brazil", Group: "R$", Value: 150}, got[0])
	assert.Equal(t, models.GroupValue{Key: "England", Group: "£", Value: 50}, got[1])

	rounded := MeanCostPerCountryCurrency([]models.Restaurant{
		restaurant(1, "A", "Canada", "Toronto", "Cafe", 10, "$", 3, 1),
		restaurant(2, "B", "Canada", "Toronto", "Cafe", 10, "$", 3, 1),
		restaurant(3, "C", "Canada", "Toronto", "Cafe", 11, "$", 3, 1),
	})
	require.Len(t, rounded, 1)
	assert.Equal(t, 10.33, rounded[0].Value)
}

func TestTopCitiesByRestaurants(t *testing.T) {
	got := TopCitiesByRestaurants(fixture(), 2)
	require.Len(t, got, 2)
	assert.Equal(t, models.GroupValue{Key: "London", Group: "England", Value: 2}, got[0])
	assert.Equal(t, models.GroupValue{Key: "Rio", Group: "Brazil", Value: 2}, got[1])

	assert.Empty(t, TopCitiesByRestaurants(fixture(), 0))
	assert.Len(t, TopCitiesByRestaurants(fixture(), 20), 5)
}

func TestCitiesByRating(t *testing.T) {
	above := CitiesRatedAbove(fixture(), HighRatingThreshold, 10)
	assert.Equal(t, []string{"Rio", "Doha", "London"}, keys(above))
	assert.Equal(t, []float64{2, 1, 1}, values(above))

	below := CitiesRatedBelow(fixture(), LowRatingThreshold, 10)
	assert.Equal(t, []string{"Delhi", "Sao Paulo"}, keys(below))

	// Порог не включается.
	edge := CitiesRatedAbove([]models.Restaurant{restaurant(1, "A", "Brazil", "Rio", "Cafe", 1, "R$", 4.0, 1)}, 4.0, 10)
	assert.Empty(t, edge)
}

func TestCitiesByDistinctCuisines(t *testing.T) {
	got := CitiesByDistinctCuisines(fixture(), 3)
	assert.Equal(t, []string{"London", "Rio", "Delhi"}, keys(got))
	assert.Equal(t, []float64{2, 2, 1}, values(got))
}

func TestBestRestaurantForCuisine(t *testing.T) {
	best, err := BestRestaurantForCuisine(fixture(), "Italian")
	require.NoError(t, err)
	assert.Equal(t, 2, best.ID, "equal ratings resolve to the lowest id")

	_, err = BestRestaurantForCuisine(fixture(), "Japanese")
	require.ErrorIs(t, err, ErrNoRestaurants)
}

func TestFeatured(t *testing.T) {
	got := Featured(fixture())
	require.Len(t, got, len(FeaturedCuisines))

	assert.Equal(t, "Italiana", got[0].Label)
	require.NotNil(t, got[0].Restaurant)
	assert.Equal(t, "B", got[0].Restaurant.Name)

	assert.Nil(t, got[1].Restaurant, "no American restaurants in fixture")
	require.NotNil(t, got[2].Restaurant)
	assert.Equal(t, "F", got[2].Restaurant.Name)
	assert.Nil(t, got[3].Restaurant)
}

func TestTopRestaurants(t *testing.T) {
	rs := fixture()
	got := TopRestaurants(rs, 3)

	ids := make([]int, len(got))
	for i, r := range got {
		ids[i] = r.ID
	}
	assert.Equal(t, []int{1, 2, 5}, ids)
	assert.Equal(t, 1, rs[0].ID, "input order must be preserved")
}

func TestBestAndWorstCuisines(t *testing.T) {
	best := BestCuisines(fixture(), 2)
	assert.Equal(t, []string{"Brazilian", "Arabian"}, keys(best))

	worst := WorstCuisines(fixture(), 2)
	assert.Equal(t, []string{"North Indian", "British"}, keys(worst))

	all := BestCuisines(fixture(), 10)
	require.Len(t, all, 5)
	assert.InDelta(t, 3.9333, all[2].Value, 1e-3)
}

func TestPageAggregates(t *testing.T) {
	rs := fixture()

	countries := Countries(rs)
	assert.Len(t, countries.RestaurantsPerCountry, 4)

	cities := Cities(rs, 1)
	assert.Equal(t, 1, cities.Limit)
	assert.Len(t, cities.TopByRestaurants, 1)

	cuisines := Cuisines(rs, 2)
	assert.Len(t, cuisines.TopRestaurants, 2)
	assert.Len(t, cuisines.Featured, 4)
}

func TestMarkers(t *testing.T) {
	fc := Markers(fixture()[:1])
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)

	f := fc.Features[0]
	assert.Equal(t, "Point", f.Geometry.Type)
	assert.Equal(t, [2]float64{-1, 1}, f.Geometry.Coordinates, "GeoJSON order is lon, lat")
	assert.Equal(t, "green", f.Properties.Color)
	assert.Equal(t, "4.5 / 5.0", f.Properties.RatingLabel)
	assert.Equal(t, MarkerIcon, f.Properties.Icon)

	assert.Empty(t, Markers(nil).Features)
}
