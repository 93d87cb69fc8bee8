package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/akozadaev/toeat_restaurants/internal/models"
)

// MissingColumnError возвращается, если в таблице нет обязательной колонки.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %q", e.Column)
}

var decodeColumns = []string{
	ColRestaurantID,
	ColRestaurantName,
	ColCountryCode,
	ColCountry,
	ColCity,
	ColAddress,
	ColLocality,
	ColLocalityVerbose,
	ColLongitude,
	ColLatitude,
	ColCuisines,
	ColAverageCostForTwo,
	ColCurrency,
	ColHasTableBooking,
	ColHasOnlineDelivery,
	ColIsDeliveringNow,
	ColPriceRange,
	ColCategoryPrice,
	ColAggregateRating,
	ColRatingColor,
	ColRatingColorName,
	ColRatingText,
	ColVotes,
}

// Decode преобразует очищенную и обогащенную таблицу в типизированные записи.
func Decode(t *Table) ([]models.Restaurant, error) {
	idx, err := columnIndexes(t, decodeColumns...)
	if err != nil {
		return nil, err
	}
	col := make(map[string]int, len(decodeColumns))
	for i, name := range decodeColumns {
		col[name] = idx[i]
	}

	out := make([]models.Restaurant, 0, len(t.Rows))
	for n, row := range t.Rows {
		d := rowDecoder{row: row, col: col}
		r := models.Restaurant{
			ID:                d.asInt(ColRestaurantID),
			Name:              d.asString(ColRestaurantName),
			CountryCode:       d.asInt(ColCountryCode),
			Country:           d.asString(ColCountry),
			City:              d.asString(ColCity),
			Address:           d.asString(ColAddress),
			Locality:          d.asString(ColLocality),
			LocalityVerbose:   d.asString(ColLocalityVerbose),
			Coordinates:       models.GeoPoint{Lat: d.asFloat(ColLatitude), Lon: d.asFloat(ColLongitude)},
			Cuisine:           d.asString(ColCuisines),
			AverageCostForTwo: d.asFloat(ColAverageCostForTwo),
			Currency:          d.asString(ColCurrency),
			HasTableBooking:   d.asBool(ColHasTableBooking),
			HasOnlineDelivery: d.asBool(ColHasOnlineDelivery),
			IsDeliveringNow:   d.asBool(ColIsDeliveringNow),
			PriceRange:        d.asInt(ColPriceRange),
			CategoryPrice:     d.asString(ColCategoryPrice),
			AggregateRating:   d.asFloat(ColAggregateRating),
			RatingColor:       d.asString(ColRatingColor),
			RatingColorName:   d.asString(ColRatingColorName),
			RatingText:        d.asString(ColRatingText),
			Votes:             d.asInt(ColVotes),
		}
		if d.err != nil {
			return nil, fmt.Errorf("row %d: %w", n+1, d.err)
		}
		out = append(out, r)
	}

	return out, nil
}

// rowDecoder запоминает первую ошибку разбора, чтобы не проверять каждое поле отдельно.
type rowDecoder struct {
	row []string
	col map[string]int
	err error
}

func (d *rowDecoder) asString(name string) string {
	return d.row[d.col[name]]
}

func (d *rowDecoder) asInt(name string) int {
	v, err := parseInt(d.asString(name))
	if err != nil && d.err == nil {
		d.err = fmt.Errorf("column %s: %w", name, err)
	}
	return v
}

func (d *rowDecoder) asFloat(name string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(d.asString(name)), 64)
	if err != nil && d.err == nil {
		d.err = fmt.Errorf("column %s: %w", name, err)
	}
	return v
}

func (d *rowDecoder) asBool(name string) bool {
	v, err := strconv.ParseBool(d.asString(name))
	if err != nil && d.err == nil {
		d.err = fmt.Errorf("column %s: %w", name, err)
	}
	return v
}

func columnIndexes(t *Table, names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		idx := t.Index(name)
		if idx < 0 {
			return nil, &MissingColumnError{Column: name}
		}
		out[i] = idx
	}
	return out, nil
}

// parseInt принимает и целые значения, записанные как float ("3.0").
func parseInt(v string) (int, error) {
	v = strings.TrimSpace(v)
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", v)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid integer %q", v)
	}
	return int(f), nil
}
