package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/akozadaev/toeat_restaurants/internal/analytics"
	"github.com/akozadaev/toeat_restaurants/internal/models"
)

// query - значения фильтров боковой панели.
type query struct {
	Countries []string
	Cuisines  []string
	Limit     int
}

// parseQuery читает country, cuisine и limit.
// Отсутствующий параметр заменяется значением по умолчанию. Параметр,
// переданный только с пустыми значениями, означает пустой выбор.
func parseQuery(r *http.Request) (query, error) {
	values := r.URL.Query()
	q := query{
		Countries: selection(values, "country", analytics.DefaultCountries),
		Cuisines:  selection(values, "cuisine", analytics.DefaultCuisines),
		Limit:     analytics.DefaultLimit,
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return query{}, fmt.Errorf("invalid limit %q", raw)
		}
		if limit < 0 || limit > analytics.MaxLimit {
			return query{}, fmt.Errorf("limit must be between 0 and %d", analytics.MaxLimit)
		}
		q.Limit = limit
	}

	return q, nil
}

func selection(values url.Values, key string, defaults []string) []string {
	raw, ok := values[key]
	if !ok {
		return append([]string(nil), defaults...)
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// countryScope применяет фильтр стран.
func (q query) countryScope(rs []models.Restaurant) []models.Restaurant {
	return analytics.ByCountries(rs, q.Countries)
}

// cuisineScope применяет фильтр стран, затем фильтр кухонь.
func (q query) cuisineScope(rs []models.Restaurant) []models.Restaurant {
	return analytics.ByCuisines(q.countryScope(rs), q.Cuisines)
}

// encode сериализует фильтры для ссылок на диаграммы и выгрузки.
// Пустой выбор передается пустым значением, чтобы не подставились значения по умолчанию.
func (q query) encode(withCuisines, withLimit bool) string {
	values := url.Values{}
	values["country"] = orEmpty(q.Countries)
	if withCuisines {
		values["cuisine"] = orEmpty(q.Cuisines)
	}
	if withLimit {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	return values.Encode()
}

func orEmpty(vs []string) []string {
	if len(vs) == 0 {
		return []string{""}
	}
	return vs
}
