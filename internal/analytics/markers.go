package analytics

import (
	"fmt"

	"github.com/akozadaev/toeat_restaurants/internal/models"
)

// MarkerIcon - иконка Font Awesome для маркеров ресторанов.
const MarkerIcon = "fa-cutlery"

// FeatureCollection - слой маркеров карты в формате GeoJSON.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature - один маркер ресторана.
type Feature struct {
	Type       string           `json:"type"`
	Geometry   Geometry         `json:"geometry"`
	Properties MarkerProperties `json:"properties"`
}

// Geometry - точка в порядке GeoJSON: долгота, широта.
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// MarkerProperties - данные всплывающего окна и цвет маркера.
type MarkerProperties struct {
	RestaurantID      int     `json:"restaurant_id"`
	Name              string  `json:"name"`
	Cuisine           string  `json:"cuisine"`
	AverageCostForTwo float64 `json:"average_cost_for_two"`
	Currency          string  `json:"currency"`
	Rating            float64 `json:"rating"`
	RatingLabel       string  `json:"rating_label"`
	Color             string  `json:"color"`
	Icon              string  `json:"icon"`
}

// Markers строит по маркеру на каждую запись.
func Markers(rs []models.Restaurant) FeatureCollection {
	fc := FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0, len(rs)),
	}

	for i := range rs {
		r := &rs[i]
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: [2]float64{r.Coordinates.Lon, r.Coordinates.Lat},
			},
			Properties: MarkerProperties{
				RestaurantID:      r.ID,
				Name:              r.Name,
				Cuisine:           r.Cuisine,
				AverageCostForTwo: r.AverageCostForTwo,
				Currency:          r.Currency,
				Rating:            r.AggregateRating,
				RatingLabel:       fmt.Sprintf("%.1f / 5.0", r.AggregateRating),
				Color:             r.RatingColorName,
				Icon:              MarkerIcon,
			},
		})
	}

	return fc
}
