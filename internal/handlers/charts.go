package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/akozadaev/toeat_restaurants/internal/analytics"
	"github.com/akozadaev/toeat_restaurants/internal/charts"
	"github.com/akozadaev/toeat_restaurants/internal/models"
)

// scope - набор фильтров страницы, к которой относится диаграмма.
type scope int

const (
	scopeCountries scope = iota // только фильтр стран
	scopeCuisines               // страны и кухни
)

// chartDef описывает одну диаграмму дашборда.
type chartDef struct {
	scope     scope
	limited   bool // Использует limit из запроса
	titleSize float64
	grouped   bool // Столбцы раскрашиваются по группе
	xLabel    string
	yLabel    string
	legend    string
	title     func(limit int) string
	values    func(rs []models.Restaurant, limit int) []models.GroupValue
}

func fixedTitle(title string) func(int) string {
	return func(int) string { return title }
}

var chartDefs = map[string]chartDef{
	"countries-restaurants": {
		scope:     scopeCountries,
		titleSize: 26,
		xLabel:    "País",
		yLabel:    "Nome dos Restaurante",
		title:     fixedTitle("Quantidade de Restaurantes Registrados por País"),
		values: func(rs []models.Restaurant, _ int) []models.GroupValue {
			return analytics.RestaurantsPerCountry(rs)
		},
	},
	"countries-cities": {
		scope:     scopeCountries,
		titleSize: 26,
		xLabel:    "País",
		yLabel:    "Cidade",
		title:     fixedTitle("Quantidade de Cidades Registradas por País"),
		values: func(rs []models.Restaurant, _ int) []models.GroupValue {
			return analytics.CitiesPerCountry(rs)
		},
	},
	"countries-votes": {
		scope:     scopeCountries,
		titleSize: 26,
		xLabel:    "País",
		yLabel:    "Avaliações",
		title:     fixedTitle("Média de Avaliações por País"),
		values: func(rs []models.Restaurant, _ int) []models.GroupValue {
			return analytics.MeanVotesPerCountry(rs)
		},
	},
	"countries-cost": {
		scope:     scopeCountries,
		titleSize: 26,
		grouped:   true,
		xLabel:    "País",
		yLabel:    "Preço Médio para 2 pessoas",
		legend:    "Moeda",
		title:     fixedTitle("Preço médio para 2 pessoas segundo cada país"),
		values: func(rs []models.Restaurant, _ int) []models.GroupValue {
			return analytics.MeanCostPerCountryCurrency(rs)
		},
	},
	"cities-restaurants": {
		scope:     scopeCountries,
		limited:   true,
		titleSize: 20,
		grouped:   true,
		xLabel:    "Cidade",
		yLabel:    "Quantidade de Restaurantes",
		legend:    "País",
		title: func(limit int) string {
			return fmt.Sprintf("%d cidades com a maior quantidade de restaurantes registrados", limit)
		},
		values: analytics.TopCitiesByRestaurants,
	},
	"cities-rated-above": {
		scope:     scopeCountries,
		limited:   true,
		titleSize: 18,
		grouped:   true,
		xLabel:    "Cidade",
		yLabel:    "Quantidade de Restaurantes",
		legend:    "País",
		title: func(limit int) string {
			return fmt.Sprintf("%d cidades com restaurantes com avaliação acima de 4", limit)
		},
		values: func(rs []models.Restaurant, limit int) []models.GroupValue {
			return analytics.CitiesRatedAbove(rs, analytics.HighRatingThreshold, limit)
		},
	},
	"cities-rated-below": {
		scope:     scopeCountries,
		limited:   true,
		titleSize: 18,
		grouped:   true,
		xLabel:    "Cidade",
		yLabel:    "Quantidade de Restaurantes",
		legend:    "País",
		title: func(limit int) string {
			return fmt.Sprintf("%d cidades com restaurantes com avaliação abaixo de 2,5", limit)
		},
		values: func(rs []models.Restaurant, limit int) []models.GroupValue {
			return analytics.CitiesRatedBelow(rs, analytics.LowRatingThreshold, limit)
		},
	},
	"cities-cuisines": {
		scope:     scopeCountries,
		limited:   true,
		titleSize: 20,
		grouped:   true,
		xLabel:    "Cidade",
		yLabel:    "Quantidade de Culinárias Distintas",
		legend:    "País",
		title: func(limit int) string {
			return fmt.Sprintf("%d cidades com o maior número de culinárias distintas", limit)
		},
		values: analytics.CitiesByDistinctCuisines,
	},
	"cuisines-best": {
		scope:     scopeCuisines,
		limited:   true,
		titleSize: 20,
		xLabel:    "Culinária",
		yLabel:    "Nota Média",
		title:     fixedTitle("Melhores tipos de culinária"),
		values:    analytics.BestCuisines,
	},
	"cuisines-worst": {
		scope:     scopeCuisines,
		limited:   true,
		titleSize: 20,
		xLabel:    "Culinária",
		yLabel:    "Nota Média",
		title:     fixedTitle("Piores tipos de culinária"),
		values:    analytics.WorstCuisines,
	},
}

// ChartNames возвращает имена всех диаграмм в алфавитном порядке.
func ChartNames() []string {
	names := make([]string, 0, len(chartDefs))
	for name := range chartDefs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// spec строит описание диаграммы по отфильтрованным записям.
func (d chartDef) spec(rs []models.Restaurant, q query) charts.Spec {
	if d.scope == scopeCuisines {
		rs = q.cuisineScope(rs)
	} else {
		rs = q.countryScope(rs)
	}

	return charts.Spec{
		Title:        d.title(q.Limit),
		TitleSize:    d.titleSize,
		XLabel:       d.xLabel,
		YLabel:       d.yLabel,
		LegendTitle:  d.legend,
		Bars:         charts.FromGroupValues(d.values(rs, q.Limit), d.grouped),
		ColorByGroup: d.grouped,
	}
}

// link возвращает адрес диаграммы с текущими фильтрами.
func (d chartDef) link(name string, q query) string {
	return "/charts/" + name + ".svg?" + q.encode(d.scope == scopeCuisines, d.limited)
}

// GetChart обрабатывает GET запрос на получение диаграммы в SVG.
// Эндпоинт: GET /charts/{name}.svg
//
// @Summary      Диаграмма дашборда
// @Description  Столбчатая диаграмма в SVG. Имена: countries-restaurants, countries-cities, countries-votes, countries-cost, cities-restaurants, cities-rated-above, cities-rated-below, cities-cuisines, cuisines-best, cuisines-worst
// @Tags         charts
// @Produce      image/svg+xml
// @Param        name     path      string    true   "Имя диаграммы"
// @Param        country  query     []string  false  "Страны"  collectionFormat(multi)
// @Param        cuisine  query     []string  false  "Кухни"   collectionFormat(multi)
// @Param        limit    query     int       false  "Количество столбцов (0..20)"
// @Success      200      {file}    file
// @Failure      400      {object}  map[string]string  "Неверный запрос"
// @Failure      404      {object}  map[string]string  "Диаграмма не найдена"
// @Failure      500      {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /charts/{name}.svg [get]
func (h *Handlers) GetChart(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	def, ok := chartDefs[name]
	if !ok {
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("unknown chart %q", name))
		return
	}

	q, ok := h.params(w, r)
	if !ok {
		return
	}
	rs, ok := h.restaurants(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := charts.Render(&buf, def.spec(rs, q)); err != nil {
		h.internalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn("failed to write chart", zap.String("chart", name), zap.Error(err))
	}
}
