package analytics

import "github.com/akozadaev/toeat_restaurants/internal/models"

// Значения фильтров боковой панели по умолчанию.
var (
	DefaultCountries = []string{"Brazil", "England", "Qatar", "South Africa", "Canada", "Australia"}
	DefaultCuisines  = []string{"Italian", "American", "Arabian", "Brazilian", "Japanese", "Cafe"}
)

// Границы ползунка количества элементов.
const (
	DefaultLimit = 10
	MaxLimit     = 20
)

// ByCountries оставляет записи выбранных стран. Пустой выбор не оставляет ничего.
func ByCountries(rs []models.Restaurant, countries []string) []models.Restaurant {
	return filterBy(rs, countries, func(r *models.Restaurant) string { return r.Country })
}

// ByCuisines оставляет записи выбранных кухонь. Пустой выбор не оставляет ничего.
func ByCuisines(rs []models.Restaurant, cuisines []string) []models.Restaurant {
	return filterBy(rs, cuisines, func(r *models.Restaurant) string { return r.Cuisine })
}

// CountryOptions возвращает уникальные страны в порядке первого появления.
func CountryOptions(rs []models.Restaurant) []string {
	return options(rs, func(r *models.Restaurant) string { return r.Country })
}

// CuisineOptions возвращает уникальные кухни в порядке первого появления.
func CuisineOptions(rs []models.Restaurant) []string {
	return options(rs, func(r *models.Restaurant) string { return r.Cuisine })
}

func filterBy(rs []models.Restaurant, selected []string, field func(r *models.Restaurant) string) []models.Restaurant {
	set := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		set[s] = struct{}{}
	}

	out := make([]models.Restaurant, 0, len(rs))
	for i := range rs {
		if _, ok := set[field(&rs[i])]; ok {
			out = append(out, rs[i])
		}
	}
	return out
}

func options(rs []models.Restaurant, field func(r *models.Restaurant) string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for i := range rs {
		v := field(&rs[i])
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
