package analytics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/akozadaev/toeat_restaurants/internal/models"
)

// ErrNoRestaurants возвращается, когда после фильтров не осталось записей нужной кухни.
var ErrNoRestaurants = errors.New("no restaurants for cuisine")

// Пороги рейтинга на странице городов.
const (
	HighRatingThreshold = 4.0
	LowRatingThreshold  = 2.5
)

// FeaturedCuisine - кухня, лучший ресторан которой выводится отдельной метрикой.
type FeaturedCuisine struct {
	Cuisine string
	Label   string
}

// FeaturedCuisines - кухни метрик страницы кухонь.
var FeaturedCuisines = []FeaturedCuisine{
	{Cuisine: "Italian", Label: "Italiana"},
	{Cuisine: "American", Label: "Americana"},
	{Cuisine: "Arabian", Label: "Árabe"},
	{Cuisine: "Japanese", Label: "Japonesa"},
}

// Overview считает общие метрики главной страницы.
func Overview(rs []models.Restaurant) models.Overview {
	countries := map[string]struct{}{}
	ids := map[int]struct{}{}
	cities := map[string]struct{}{}
	cuisines := map[string]struct{}{}
	var votes int

	for i := range rs {
		r := &rs[i]
		countries[r.Country] = struct{}{}
		ids[r.ID] = struct{}{}
		cities[r.City] = struct{}{}
		cuisines[r.Cuisine] = struct{}{}
		votes += r.Votes
	}

	return models.Overview{
		Countries:   len(countries),
		Restaurants: len(ids),
		Cities:      len(cities),
		Votes:       votes,
		Cuisines:    len(cuisines),
	}
}

// RestaurantsPerCountry считает рестораны каждой страны, по убыванию.
func RestaurantsPerCountry(rs []models.Restaurant) []models.GroupValue {
	out := count(rs, byCountry, func(r *models.Restaurant) bool { return r.Name != "" })
	sortByValue(out, true)
	return out
}

// CitiesPerCountry считает уникальные города каждой страны, по убыванию.
func CitiesPerCountry(rs []models.Restaurant) []models.GroupValue {
	out := distinct(rs, byCountry, func(r *models.Restaurant) string { return r.City })
	sortByValue(out, true)
	return out
}

// MeanVotesPerCountry считает среднее число голосов по странам в алфавитном порядке.
func MeanVotesPerCountry(rs []models.Restaurant) []models.GroupValue {
	return mean(rs, byCountry, func(r *models.Restaurant) float64 { return float64(r.Votes) })
}

// MeanCostPerCountryCurrency считает среднюю стоимость на двоих по паре страна/валюта,
// округляя до двух знаков.
func MeanCostPerCountryCurrency(rs []models.Restaurant) []models.GroupValue {
	out := mean(rs, func(r *models.Restaurant) groupKey {
		return groupKey{key: r.Country, group: r.Currency}
	}, func(r *models.Restaurant) float64 { return r.AverageCostForTwo })

	for i := range out {
		out[i].Value = round2(out[i].Value)
	}
	return out
}

// TopCitiesByRestaurants возвращает limit городов с наибольшим числом ресторанов.
func TopCitiesByRestaurants(rs []models.Restaurant, limit int) []models.GroupValue {
	out := count(rs, byCityCountry, nil)
	sortByValue(out, true)
	return head(out, limit)
}

// CitiesRatedAbove возвращает limit городов с наибольшим числом ресторанов с рейтингом строго выше threshold.
func CitiesRatedAbove(rs []models.Restaurant, threshold float64, limit int) []models.GroupValue {
	out := count(rs, byCityCountry, func(r *models.Restaurant) bool { return r.AggregateRating > threshold })
	sortByValue(out, true)
	return head(out, limit)
}

// CitiesRatedBelow возвращает limit городов с наибольшим числом ресторанов с рейтингом строго ниже threshold.
func CitiesRatedBelow(rs []models.Restaurant, threshold float64, limit int) []models.GroupValue {
	out := count(rs, byCityCountry, func(r *models.Restaurant) bool { return r.AggregateRating < threshold })
	sortByValue(out, true)
	return head(out, limit)
}

// CitiesByDistinctCuisines возвращает limit городов с наибольшим числом разных кухонь.
func CitiesByDistinctCuisines(rs []models.Restaurant, limit int) []models.GroupValue {
	out := distinct(rs, byCityCountry, func(r *models.Restaurant) string { return r.Cuisine })
	sortByValue(out, true)
	return head(out, limit)
}

// BestRestaurantForCuisine возвращает ресторан кухни с максимальным рейтингом.
// При равном рейтинге выбирается меньший restaurant_id.
func BestRestaurantForCuisine(rs []models.Restaurant, cuisine string) (models.Restaurant, error) {
	var best *models.Restaurant
	for i := range rs {
		r := &rs[i]
		if r.Cuisine != cuisine {
			continue
		}
		if best == nil || r.AggregateRating > best.AggregateRating ||
			(r.AggregateRating == best.AggregateRating && r.ID < best.ID) {
			best = r
		}
	}

	if best == nil {
		return models.Restaurant{}, fmt.Errorf("%w: %s", ErrNoRestaurants, cuisine)
	}
	return *best, nil
}

// Featured возвращает лучшие рестораны для FeaturedCuisines.
func Featured(rs []models.Restaurant) []models.FeaturedRestaurant {
	out := make([]models.FeaturedRestaurant, 0, len(FeaturedCuisines))
	for _, fc := range FeaturedCuisines {
		item := models.FeaturedRestaurant{Cuisine: fc.Cuisine, Label: fc.Label}
		if best, err := BestRestaurantForCuisine(rs, fc.Cuisine); err == nil {
			item.Restaurant = &best
		}
		out = append(out, item)
	}
	return out
}

// TopRestaurants возвращает limit ресторанов с наибольшим рейтингом,
// отсортированных затем по restaurant_id.
func TopRestaurants(rs []models.Restaurant, limit int) []models.Restaurant {
	sorted := append([]models.Restaurant(nil), rs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].AggregateRating != sorted[j].AggregateRating {
			return sorted[i].AggregateRating > sorted[j].AggregateRating
		}
		return sorted[i].ID < sorted[j].ID
	})

	top := head(sorted, limit)
	sort.SliceStable(top, func(i, j int) bool { return top[i].ID < top[j].ID })
	return top
}

// BestCuisines возвращает limit кухонь с наибольшим средним рейтингом.
func BestCuisines(rs []models.Restaurant, limit int) []models.GroupValue {
	out := mean(rs, byCuisine, func(r *models.Restaurant) float64 { return r.AggregateRating })
	sortByValue(out, true)
	return head(out, limit)
}

// WorstCuisines возвращает limit кухонь с наименьшим средним рейтингом.
func WorstCuisines(rs []models.Restaurant, limit int) []models.GroupValue {
	out := mean(rs, byCuisine, func(r *models.Restaurant) float64 { return r.AggregateRating })
	sortByValue(out, false)
	return head(out, limit)
}

// Countries собирает все агрегаты страницы стран.
func Countries(rs []models.Restaurant) models.CountriesResponse {
	return models.CountriesResponse{
		RestaurantsPerCountry: RestaurantsPerCountry(rs),
		CitiesPerCountry:      CitiesPerCountry(rs),
		MeanVotesPerCountry:   MeanVotesPerCountry(rs),
		MeanCostPerCountry:    MeanCostPerCountryCurrency(rs),
	}
}

// Cities собирает все агрегаты страницы городов.
func Cities(rs []models.Restaurant, limit int) models.CitiesResponse {
	return models.CitiesResponse{
		Limit:              limit,
		TopByRestaurants:   TopCitiesByRestaurants(rs, limit),
		RatedAbove:         CitiesRatedAbove(rs, HighRatingThreshold, limit),
		RatedBelow:         CitiesRatedBelow(rs, LowRatingThreshold, limit),
		ByDistinctCuisines: CitiesByDistinctCuisines(rs, limit),
	}
}

// Cuisines собирает все агрегаты страницы кухонь.
func Cuisines(rs []models.Restaurant, limit int) models.CuisinesResponse {
	return models.CuisinesResponse{
		Limit:          limit,
		Featured:       Featured(rs),
		TopRestaurants: TopRestaurants(rs, limit),
		BestCuisines:   BestCuisines(rs, limit),
		WorstCuisines:  WorstCuisines(rs, limit),
	}
}
