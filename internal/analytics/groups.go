// Package analytics содержит агрегаты страниц дашборда над очищенными записями.
// Все функции чистые: они не изменяют переданный срез.
package analytics

import (
	"math"
	"sort"

	"github.com/akozadaev/toeat_restaurants/internal/models"
)

type groupKey struct {
	key   string
	group string
}

type keyFunc func(r *models.Restaurant) groupKey

func byCountry(r *models.Restaurant) groupKey {
	return groupKey{key: r.Country}
}

func byCityCountry(r *models.Restaurant) groupKey {
	return groupKey{key: r.City, group: r.Country}
}

func byCuisine(r *models.Restaurant) groupKey {
	return groupKey{key: r.Cuisine}
}

// count считает записи в каждой группе.
func count(rs []models.Restaurant, keyOf keyFunc, keep func(r *models.Restaurant) bool) []models.GroupValue {
	counts := map[groupKey]float64{}
	for i := range rs {
		r := &rs[i]
		if keep != nil && !keep(r) {
			continue
		}
		counts[keyOf(r)]++
	}
	return toValues(counts)
}

// distinct считает уникальные значения поля в каждой группе.
func distinct(rs []models.Restaurant, keyOf keyFunc, field func(r *models.Restaurant) string) []models.GroupValue {
	sets := map[groupKey]map[string]struct{}{}
	for i := range rs {
		r := &rs[i]
		k := keyOf(r)
		if sets[k] == nil {
			sets[k] = map[string]struct{}{}
		}
		sets[k][field(r)] = struct{}{}
	}

	counts := make(map[groupKey]float64, len(sets))
	for k, s := range sets {
		counts[k] = float64(len(s))
	}
	return toValues(counts)
}

// mean считает среднее значение поля в каждой группе.
func mean(rs []models.Restaurant, keyOf keyFunc, field func(r *models.Restaurant) float64) []models.GroupValue {
	sums := map[groupKey]float64{}
	ns := map[groupKey]float64{}
	for i := range rs {
		r := &rs[i]
		k := keyOf(r)
		sums[k] += field(r)
		ns[k]++
	}

	means := make(map[groupKey]float64, len(sums))
	for k, s := range sums {
		means[k] = s / ns[k]
	}
	return toValues(means)
}

func toValues(m map[groupKey]float64) []models.GroupValue {
	out := make([]models.GroupValue, 0, len(m))
	for k, v := range m {
		out = append(out, models.GroupValue{Key: k.key, Group: k.group, Value: v})
	}
	sortByKey(out)
	return out
}

func lessKey(a, b models.GroupValue) bool {
	if a.Key != b.Key {
		return a.Key < b.Key
	}
	return a.Group < b.Group
}

func sortByKey(vs []models.GroupValue) {
	sort.Slice(vs, func(i, j int) bool { return lessKey(vs[i], vs[j]) })
}

// sortByValue сортирует по значению, равные значения - по ключу группы.
func sortByValue(vs []models.GroupValue, descending bool) {
	sort.Slice(vs, func(i, j int) bool {
		if vs[i].Value != vs[j].Value {
			if descending {
				return vs[i].Value > vs[j].Value
			}
			return vs[i].Value < vs[j].Value
		}
		return lessKey(vs[i], vs[j])
	})
}

func head[T any](vs []T, limit int) []T {
	if limit < 0 {
		limit = 0
	}
	if limit < len(vs) {
		return vs[:limit]
	}
	return vs
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
