package dataset

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Имена колонок после RenameColumns.
const (
	ColRestaurantID      = "restaurant_id"
	ColRestaurantName    = "restaurant_name"
	ColCountryCode       = "country_code"
	ColCity              = "city"
	ColAddress           = "address"
	ColLocality          = "locality"
	ColLocalityVerbose   = "locality_verbose"
	ColLongitude         = "longitude"
	ColLatitude          = "latitude"
	ColCuisines          = "cuisines"
	ColAverageCostForTwo = "average_cost_for_two"
	ColCurrency          = "currency"
	ColHasTableBooking   = "has_table_booking"
	ColHasOnlineDelivery = "has_online_delivery"
	ColIsDeliveringNow   = "is_delivering_now"
	ColSwitchToOrderMenu = "switch_to_order_menu"
	ColPriceRange        = "price_range"
	ColAggregateRating   = "aggregate_rating"
	ColRatingColor       = "rating_color"
	ColRatingText        = "rating_text"
	ColVotes             = "votes"

	ColCountry         = "country"
	ColCategoryPrice   = "category_price"
	ColRatingColorName = "rating_color_name"
)

var (
	upperRunRe = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	lowerUpRe  = regexp.MustCompile(`([a-z\d])([A-Z])`)
	idSuffixRe = regexp.MustCompile(`_id$`)
)

// RenameColumns приводит заголовки к snake_case:
// "Average Cost for two" становится "average_cost_for_two", "Restaurant ID" становится "restaurant_id".
func RenameColumns(t *Table) {
	for i, c := range t.Columns {
		t.Columns[i] = ColumnName(c)
	}
}

// ColumnName нормализует один заголовок: titleize, удаление пробелов, snake_case.
func ColumnName(name string) string {
	return underscore(strings.ReplaceAll(titleize(name), " ", ""))
}

func underscore(word string) string {
	word = upperRunRe.ReplaceAllString(word, "${1}_${2}")
	word = lowerUpRe.ReplaceAllString(word, "${1}_${2}")
	word = strings.ReplaceAll(word, "-", "_")
	return strings.ToLower(word)
}

func humanize(word string) string {
	word = idSuffixRe.ReplaceAllString(word, "")
	word = strings.ReplaceAll(word, "_", " ")
	word = strings.ToLower(word)
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func titleize(word string) string {
	// Caser хранит состояние и не разделяется между горутинами.
	return cases.Title(language.English).String(humanize(underscore(word)))
}
