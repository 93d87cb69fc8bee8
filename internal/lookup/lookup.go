// Package lookup содержит закрытые справочники набора данных Zomato:
// страны, ценовые категории и цвета маркеров рейтинга.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/akozadaev/toeat_restaurants/internal/models"
)

var (
	// ErrUnknownCountry возвращается для кода страны вне справочника.
	ErrUnknownCountry = errors.New("unknown country code")
	// ErrUnknownRatingColor возвращается для кода цвета вне справочника.
	ErrUnknownRatingColor = errors.New("unknown rating color code")
)

var countries = map[int]string{
	1:   "India",
	14:  "Australia",
	30:  "Brazil",
	37:  "Canada",
	94:  "Indonesia",
	148: "New Zeland",
	162: "Philippines",
	166: "Qatar",
	184: "Singapure",
	189: "South Africa",
	191: "Sri Lanka",
	208: "Turkey",
	214: "United Arab Emirates",
	215: "England",
	216: "United States of America",
}

var ratingColors = map[string]string{
	"3F7E00": "darkgreen",
	"5BA829": "green",
	"9ACD32": "lightgreen",
	"CDD614": "orange",
	"FFBA00": "red",
	"CBCBC8": "darkred",
	"FF7800": "darkred",
}

// Ценовые категории по полю price_range.
const (
	PriceCheap     = "cheap"
	PriceNormal    = "normal"
	PriceExpensive = "expensive"
	PriceGourmet   = "gourmet"
)

// CountryName возвращает название страны по её коду.
func CountryName(code int) (string, error) {
	name, ok := countries[code]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownCountry, code)
	}
	return name, nil
}

// PriceCategory возвращает ценовую категорию. Любое значение кроме 1, 2 и 3 считается gourmet.
func PriceCategory(priceRange int) string {
	switch priceRange {
	case 1:
		return PriceCheap
	case 2:
		return PriceNormal
	case 3:
		return PriceExpensive
	default:
		return PriceGourmet
	}
}

// ColorName возвращает имя цвета маркера по hex коду рейтинга.
func ColorName(code string) (string, error) {
	name, ok := ratingColors[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRatingColor, code)
	}
	return name, nil
}

// Countries возвращает справочник стран, отсортированный по коду.
func Countries() []models.Country {
	out := make([]models.Country, 0, len(countries))
	for code, name := range countries {
		out = append(out, models.Country{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// RatingColors возвращает справочник цветов, отсортированный по коду.
func RatingColors() []models.RatingColor {
	out := make([]models.RatingColor, 0, len(ratingColors))
	for code, name := range ratingColors {
		out = append(out, models.RatingColor{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// PriceCategories возвращает четыре ценовые категории.
// Для gourmet указывается каноническое значение 4.
func PriceCategories() []models.PriceCategory {
	return []models.PriceCategory{
		{PriceRange: 1, Label: PriceCheap},
		{PriceRange: 2, Label: PriceNormal},
		{PriceRange: 3, Label: PriceExpensive},
		{PriceRange: 4, Label: PriceGourmet},
	}
}

// Static отдает справочники из памяти процесса.
// Используется, когда PostgreSQL не подключен.
type Static struct{}

// Countries возвращает справочник стран.
func (Static) Countries(ctx context.Context) ([]models.Country, error) {
	return Countries(), nil
}

// RatingColors возвращает справочник цветов рейтинга.
func (Static) RatingColors(ctx context.Context) ([]models.RatingColor, error) {
	return RatingColors(), nil
}

// PriceCategories возвращает справочник ценовых категорий.
func (Static) PriceCategories(ctx context.Context) ([]models.PriceCategory, error) {
	return PriceCategories(), nil
}
