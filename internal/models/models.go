package models

// Restaurant представляет очищенную запись набора данных Zomato
type Restaurant struct {
	ID                int      `json:"restaurant_id"`
	Name              string   `json:"restaurant_name"`
	CountryCode       int      `json:"country_code"`
	Country           string   `json:"country"`
	City              string   `json:"city"`
	Address           string   `json:"address"`
	Locality          string   `json:"locality"`
	LocalityVerbose   string   `json:"locality_verbose"`
	Coordinates       GeoPoint `json:"coordinates"`
	Cuisine           string   `json:"cuisines"`
	AverageCostForTwo float64  `json:"average_cost_for_two"`
	Currency          string   `json:"currency"`
	HasTableBooking   bool     `json:"has_table_booking"`
	HasOnlineDelivery bool     `json:"has_online_delivery"`
	IsDeliveringNow   bool     `json:"is_delivering_now"`
	PriceRange        int      `json:"price_range"`
	CategoryPrice     string   `json:"category_price"`
	AggregateRating   float64  `json:"aggregate_rating"`
	RatingColor       string   `json:"rating_color"`
	RatingColorName   string   `json:"rating_color_name"`
	RatingText        string   `json:"rating_text"`
	Votes             int      `json:"votes"`
}

// GeoPoint представляет географические координаты
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Country представляет запись справочника стран
type Country struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// RatingColor представляет запись справочника цветов рейтинга
type RatingColor struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PriceCategory представляет запись справочника ценовых категорий
type PriceCategory struct {
	PriceRange int    `json:"price_range"`
	Label      string `json:"label"`
}

// GroupValue представляет одно значение сгруппированного агрегата
type GroupValue struct {
	Key   string  `json:"key"`
	Group string  `json:"group,omitempty"` // Вторичный ключ: страна для городов, валюта для стран
	Value float64 `json:"value"`
}

// Overview представляет общие метрики главной страницы
type Overview struct {
	Countries   int `json:"countries"`
	Restaurants int `json:"restaurants"`
	Cities      int `json:"cities"`
	Votes       int `json:"votes"`
	Cuisines    int `json:"cuisines"`
}

// FiltersResponse представляет доступные значения фильтров боковой панели
type FiltersResponse struct {
	Countries        []string `json:"countries"`
	Cuisines         []string `json:"cuisines"`
	DefaultCountries []string `json:"default_countries"`
	DefaultCuisines  []string `json:"default_cuisines"`
	DefaultLimit     int      `json:"default_limit"`
	MaxLimit         int      `json:"max_limit"`
}

// CountriesResponse представляет агрегаты страницы стран
type CountriesResponse struct {
	RestaurantsPerCountry []GroupValue `json:"restaurants_per_country"`
	CitiesPerCountry      []GroupValue `json:"cities_per_country"`
	MeanVotesPerCountry   []GroupValue `json:"mean_votes_per_country"`
	MeanCostPerCountry    []GroupValue `json:"mean_cost_per_country"`
}

// CitiesResponse представляет агрегаты страницы городов
type CitiesResponse struct {
	Limit              int          `json:"limit"`
	TopByRestaurants   []GroupValue `json:"top_by_restaurants"`
	RatedAbove         []GroupValue `json:"rated_above"`
	RatedBelow         []GroupValue `json:"rated_below"`
	ByDistinctCuisines []GroupValue `json:"by_distinct_cuisines"`
}

// FeaturedRestaurant представляет лучший ресторан выбранной кухни
type FeaturedRestaurant struct {
	Cuisine    string      `json:"cuisine"`
	Label      string      `json:"label"`
	Restaurant *Restaurant `json:"restaurant,omitempty"` // nil, если после фильтров кухни нет
}

// CuisinesResponse представляет агрегаты страницы кухонь
type CuisinesResponse struct {
	Limit          int                  `json:"limit"`
	Featured       []FeaturedRestaurant `json:"featured"`
	TopRestaurants []Restaurant         `json:"top_restaurants"`
	BestCuisines   []GroupValue         `json:"best_cuisines"`
	WorstCuisines  []GroupValue         `json:"worst_cuisines"`
}
