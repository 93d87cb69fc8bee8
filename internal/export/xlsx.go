// Package export выгружает таблицы дашборда в XLSX.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/akozadaev/toeat_restaurants/internal/models"
)

// SheetName - имя листа с ресторанами.
const SheetName = "Top restaurants"

// RestaurantHeader - колонки таблицы лучших ресторанов.
var RestaurantHeader = []string{
	"restaurant_id",
	"restaurant_name",
	"country",
	"city",
	"cuisines",
	"average_cost_for_two",
	"currency",
	"aggregate_rating",
	"votes",
}

// WriteRestaurants записывает рестораны в XLSX книгу с одним листом.
func WriteRestaurants(w io.Writer, rs []models.Restaurant) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &RestaurantHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		row := []interface{}{
			r.ID,
			r.Name,
			r.Country,
			r.City,
			r.Cuisine,
			r.AverageCostForTwo,
			r.Currency,
			r.AggregateRating,
			r.Votes,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
