package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/akozadaev/toeat_restaurants/internal/analytics"
	"github.com/akozadaev/toeat_restaurants/internal/lookup"
	"github.com/akozadaev/toeat_restaurants/internal/models"
	"github.com/akozadaev/toeat_restaurants/internal/storage"
)

type fakeSource struct {
	rs    []models.Restaurant
	err   error
	calls int
}

func (s *fakeSource) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.Restaurant(nil), s.rs...), nil
}

// finderSource отдает записи по id без полной выборки.
type finderSource struct {
	fakeSource
	lookups int
}

func (s *finderSource) GetRestaurant(ctx context.Context, id int) (*models.Restaurant, error) {
	s.lookups++
	for i := range s.rs {
		if s.rs[i].ID == id {
			return &s.rs[i], nil
		}
	}
	return nil, storage.ErrRestaurantNotFound
}

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

func newRouter(source storage.Source) *mux.Router {
	h := NewHandlers(source, lookup.Static{}, zap.NewNop())
	router := mux.NewRouter()
	h.Register(router)
	return router
}

func get(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		countries []string
		cuisines  []string
		limit     int
		wantErr   bool
	}{
		{name: "defaults", target: "/", countries: analytics.DefaultCountries, cuisines: analytics.DefaultCuisines, limit: analytics.DefaultLimit},
		{name: "explicit", target: "/?country=India&cuisine=Cafe&limit=3", countries: []string{"India"}, cuisines: []string{"Cafe"}, limit: 3},
		{name: "empty selection", target: "/?country=&cuisine=", countries: []string{}, cuisines: []string{}, limit: analytics.DefaultLimit},
		{name: "placeholder ignored", target: "/?country=&country=Qatar", countries: []string{"Qatar"}, cuisines: analytics.DefaultCuisines, limit: analytics.DefaultLimit},
		{name: "zero limit", target: "/?limit=0", countries: analytics.DefaultCountries, cuisines: analytics.DefaultCuisines, limit: 0},
		{name: "limit too big", target: "/?limit=21", wantErr: true},
		{name: "negative limit", target: "/?limit=-1", wantErr: true},
		{name: "limit not a number", target: "/?limit=ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := parseQuery(httptest.NewRequest(http.MethodGet, tt.target, nil))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.countries, q.Countries)
			assert.Equal(t, tt.cuisines, q.Cuisines)
			assert.Equal(t, tt.limit, q.Limit)
		})
	}
}

func TestQueryEncode_KeepsEmptySelection(t *testing.T) {
	q := query{Countries: []string{}, Cuisines: []string{"Cafe"}, Limit: 5}

	assert.Equal(t, "country=", q.encode(false, false))
	assert.Equal(t, "country=&cuisine=Cafe&limit=5", q.encode(true, true))

	back, err := parseQuery(httptest.NewRequest(http.MethodGet, "/?"+q.encode(true, true), nil))
	require.NoError(t, err)
	assert.Empty(t, back.Countries)
	assert.Equal(t, []string{"Cafe"}, back.Cuisines)
}

func TestHealthCheck(t *testing.T) {
	rec := get(t, newRouter(&fakeSource{}), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGetOverview(t *testing.T) {
	router := newRouter(&fakeSource{rs: fixture()})

	rec := get(t, router, "/api/overview")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Overview
	decode(t, rec, &got)
	assert.Equal(t, models.Overview{Countries: 3, Restaurants: 6, Cities: 4, Votes: 120, Cuisines: 4}, got)

	rec = get(t, router, "/api/overview?country=India")
	decode(t, rec, &got)
	assert.Equal(t, models.Overview{Countries: 1, Restaurants: 1, Cities: 1, Votes: 0, Cuisines: 1}, got)

	rec = get(t, router, "/api/overview?country=")
	decode(t, rec, &got)
	assert.Equal(t, models.Overview{}, got)
}

func TestGetFilters(t *testing.T) {
	rec := get(t, newRouter(&fakeSource{rs: fixture()}), "/api/filters?country=England")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.FiltersResponse
	decode(t, rec, &got)
	assert.Equal(t, []string{"Brazil", "England", "Qatar", "India"}, got.Countries)
	assert.Equal(t, []string{"British", "Italian"}, got.Cuisines)
	assert.Equal(t, analytics.DefaultLimit, got.DefaultLimit)
	assert.Equal(t, analytics.MaxLimit, got.MaxLimit)
}

func TestGetMarkers(t *testing.T) {
	rec := get(t, newRouter(&fakeSource{rs: fixture()}), "/api/map/markers?country=Qatar")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get("Content-Type"))

	var got analytics.FeatureCollection
	decode(t, rec, &got)
	require.Len(t, got.Features, 1)
	assert.Equal(t, "F", got.Features[0].Properties.Name)
	assert.Equal(t, [2]float64{-6, 6}, got.Features[0].Geometry.Coordinates)
}

func TestGetCountries(t *testing.T) {
	rec := get(t, newRouter(&fakeSource{rs: fixture()}), "/api/countries")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.CountriesResponse
	decode(t, rec, &got)
	require.Len(t, got.RestaurantsPerCountry, 3)
	assert.Equal(t, "Brazil", got.RestaurantsPerCountry[0].Key)
	assert.Equal(t, 3.0, got.RestaurantsPerCountry[0].Value)
}

func TestGetCities_Limit(t *testing.T) {
	router := newRouter(&fakeSource{rs: fixture()})

	rec := get(t, router, "/api/cities?limit=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.CitiesResponse
	decode(t, rec, &got)
	assert.Equal(t, 1, got.Limit)
	require.Len(t, got.TopByRestaurants, 1)
	assert.Equal(t, "London", got.TopByRestaurants[0].Key)

	rec = get(t, router, "/api/cities?limit=21")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestGetCuisines(t *testing.T) {
	rec := get(t, newRouter(&fakeSource{rs: fixture()}), "/api/cuisines")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.CuisinesResponse
	decode(t, rec, &got)

	require.Len(t, got.Featured, len(analytics.FeaturedCuisines))
	require.NotNil(t, got.Featured[0].Restaurant)
	assert.Equal(t, 2, got.Featured[0].Restaurant.ID)
	assert.Nil(t, got.Featured[1].Restaurant, "no American restaurants in fixture")

	ids := make([]int, 0, len(got.TopRestaurants))
	for _, r := range got.TopRestaurants {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 6}, ids)
}

func TestExportTopRestaurants(t *testing.T) {
	rec := get(t, newRouter(&fakeSource{rs: fixture()}), "/api/cuisines/top-restaurants.xlsx?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "top-restaurants.xlsx")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "PK"), "xlsx is a zip archive")
}

func TestGetRestaurant(t *testing.T) {
	router := newRouter(&fakeSource{rs: fixture()})

	rec := get(t, router, "/api/restaurants/2")
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Restaurant
	decode(t, rec, &got)
	assert.Equal(t, "B", got.Name)

	rec = get(t, router, "/api/restaurants/99")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, router, "/api/restaurants/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRestaurant_UsesFinder(t *testing.T) {
	src := &finderSource{fakeSource: fakeSource{rs: fixture()}}
	router := newRouter(src)

	rec := get(t, router, "/api/restaurants/7")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, src.lookups)
	assert.Equal(t, 0, src.calls)
}

func TestGetChart(t *testing.T) {
	router := newRouter(&fakeSource{rs: fixture()})

	for _, name := range ChartNames() {
		t.Run(name, func(t *testing.T) {
			rec := get(t, router, "/charts/"+name+".svg")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), "<svg")
		})
	}

	rec := get(t, router, "/charts/countries-restaurants.svg?country=")
	assert.Equal(t, http.StatusOK, rec.Code, "empty aggregate renders a placeholder")

	rec = get(t, router, "/charts/unknown.svg")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// brokenWriter принимает заголовки, но отказывает в записи тела.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (w brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestGetChart_WriteErrorLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	h := NewHandlers(&fakeSource{rs: fixture()}, lookup.Static{}, zap.New(core))
	router := mux.NewRouter()
	h.Register(router)

	w := brokenWriter{httptest.NewRecorder()}
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/charts/countries-restaurants.svg", nil))

	entries := logs.FilterMessage("failed to write chart").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "countries-restaurants", entries[0].ContextMap()["chart"])
}

func TestChartNames(t *testing.T) {
	assert.Len(t, ChartNames(), 10)
}

func TestDictionaries(t *testing.T) {
	router := newRouter(&fakeSource{})

	rec := get(t, router, "/dictionaries/countries")
	require.Equal(t, http.StatusOK, rec.Code)
	var countries []models.Country
	decode(t, rec, &countries)
	assert.Len(t, countries, 15)

	rec = get(t, router, "/dictionaries/rating-colors")
	require.Equal(t, http.StatusOK, rec.Code)
	var colors []models.RatingColor
	decode(t, rec, &colors)
	assert.Len(t, colors, 7)

	rec = get(t, router, "/dictionaries/price-categories")
	require.Equal(t, http.StatusOK, rec.Code)
	var prices []models.PriceCategory
	decode(t, rec, &prices)
	assert.Len(t, prices, 4)
}

func TestSourceError_Returns500(t *testing.T) {
	router := newRouter(&fakeSource{err: errors.New("unknown country code: 999")})

	for _, target := range []string{"/api/overview", "/api/cuisines", "/charts/cuisines-best.svg", "/main"} {
		rec := get(t, router, target)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, target)
		assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String(), target)
	}
}

func TestPages(t *testing.T) {
	src := &fakeSource{rs: fixture()}
	router := newRouter(src)

	tests := []struct {
		target string
		want   string
	}{
		{target: "/", want: "Um projeto de análise de dados"},
		{target: "/main", want: "Métricas Gerais"},
		{target: "/countries", want: "/charts/countries-cost.svg?"},
		{target: "/cities?limit=5", want: "limit=5"},
		{target: "/cuisines", want: "Top 10 restaurantes"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, router, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}

	rec := get(t, router, "/cities?limit=50")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCuisinesPage_FeaturedAndTable(t *testing.T) {
	rec := get(t, newRouter(&fakeSource{rs: fixture()}), "/cuisines?country=Brazil")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Italiana: B")
	assert.Contains(t, body, "<td>Sao Paulo</td>")
	assert.NotContains(t, body, "<td>London</td>")
}
