package dataset

import (
	"strconv"
	"strings"

	"github.com/akozadaev/toeat_restaurants/internal/lookup"
)

// SentinelCost - заведомо ошибочное значение average_cost_for_two в выгрузке.
const SentinelCost = 25000017

// MissingCuisine - строковое представление отсутствующей кухни.
const MissingCuisine = "nan"

// ExcludedCuisines - категории кухонь, исключаемые из анализа.
var ExcludedCuisines = []string{"Drinks Only", "Mineira"}

// BoolColumns - колонки с кодировкой 0/1, приводимые к логическому типу.
var BoolColumns = []string{ColHasTableBooking, ColHasOnlineDelivery, ColIsDeliveringNow}

// Enrich добавляет производные колонки country, category_price и rating_color_name.
// Справочники применяются ко всем строкам до очистки, поэтому неизвестный код
// прерывает загрузку даже для строк, которые очистка отбросила бы.
func Enrich(t *Table) error {
	idx, err := columnIndexes(t, ColCountryCode, ColPriceRange, ColRatingColor)
	if err != nil {
		return err
	}
	countryIdx, priceIdx, colorIdx := idx[0], idx[1], idx[2]

	if err := t.AddColumn(ColCountry, func(row []string) (string, error) {
		code, err := parseInt(row[countryIdx])
		if err != nil {
			return "", err
		}
		return lookup.CountryName(code)
	}); err != nil {
		return err
	}

	if err := t.AddColumn(ColCategoryPrice, func(row []string) (string, error) {
		pr, err := parseInt(row[priceIdx])
		if err != nil {
			return "", err
		}
		return lookup.PriceCategory(pr), nil
	}); err != nil {
		return err
	}

	return t.AddColumn(ColRatingColorName, func(row []string) (string, error) {
		return lookup.ColorName(row[colorIdx])
	})
}

// Clean возвращает очищенную копию таблицы:
//  1. удаляет полностью совпадающие строки, оставляя первое вхождение;
//  2. удаляет колонку switch_to_order_menu;
//  3. оставляет в cuisines только первую кухню из списка через запятую;
//  4. приводит has_table_booking, has_online_delivery, is_delivering_now к true/false;
//  5. удаляет строки с кухней nan, Drinks Only и Mineira;
//  6. удаляет строки с average_cost_for_two равным SentinelCost;
//  7. повторно удаляет дубликаты, совпавшие после нормализации.
//
// Исходная таблица не изменяется. Отсутствующие колонки пропускаются.
func Clean(src *Table) *Table {
	t := src.Clone()

	dropDuplicates(t)
	t.DropColumn(ColSwitchToOrderMenu)

	if idx := t.Index(ColCuisines); idx >= 0 {
		for _, row := range t.Rows {
			row[idx] = firstCuisine(row[idx])
		}
	}

	for _, col := range BoolColumns {
		idx := t.Index(col)
		if idx < 0 {
			continue
		}
		for _, row := range t.Rows {
			row[idx] = strconv.FormatBool(truthy(row[idx]))
		}
	}

	if idx := t.Index(ColCuisines); idx >= 0 {
		t.Filter(func(row []string) bool {
			return !IsExcludedCuisine(row[idx])
		})
	}

	if idx := t.Index(ColAverageCostForTwo); idx >= 0 {
		t.Filter(func(row []string) bool {
			return !isSentinelCost(row[idx])
		})
	}

	dropDuplicates(t)
	return t
}

// IsExcludedCuisine сообщает, должна ли кухня быть отброшена очисткой.
func IsExcludedCuisine(cuisine string) bool {
	if cuisine == MissingCuisine {
		return true
	}
	for _, c := range ExcludedCuisines {
		if cuisine == c {
			return true
		}
	}
	return false
}

func dropDuplicates(t *Table) {
	seen := make(map[string]struct{}, len(t.Rows))
	t.Filter(func(row []string) bool {
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
		return true
	})
}

func firstCuisine(v string) string {
	if v == "" {
		return MissingCuisine
	}
	first, _, _ := strings.Cut(v, ",")
	return first
}

// truthy повторяет приведение числа к bool: ноль - false, всё остальное, включая пустое значение, - true.
func truthy(v string) bool {
	v = strings.TrimSpace(v)
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f != 0
	}
	return true
}

func isSentinelCost(v string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil && f == SentinelCost
}
