package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/akozadaev/toeat_restaurants/internal/analytics"
	"github.com/akozadaev/toeat_restaurants/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

func parsePages() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

// option - пункт списка фильтра.
type option struct {
	Value    string
	Selected bool
}

// filterForm - боковая панель фильтров страницы.
type filterForm struct {
	Action       string
	Countries    []option
	Cuisines     []option
	ShowCuisines bool
	ShowLimit    bool
	Limit        int
	MaxLimit     int
}

// chartLink - диаграмма на странице.
type chartLink struct {
	Name string
	Src  template.URL
}

// pageData - данные шаблонов страниц.
type pageData struct {
	Title      string
	Active     string
	Filters    *filterForm
	Overview   models.Overview
	MarkersURL string
	Charts     []chartLink
	Featured   []models.FeaturedRestaurant
	Top        []models.Restaurant
	Limit      int
	ExportURL  template.URL
}

func options(all, selected []string) []option {
	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}

	out := make([]option, 0, len(all))
	for _, v := range all {
		out = append(out, option{Value: v, Selected: chosen[v]})
	}
	return out
}

func chartLinks(q query, names ...string) []chartLink {
	links := make([]chartLink, 0, len(names))
	for _, name := range names {
		links = append(links, chartLink{
			Name: name,
			Src:  template.URL(chartDefs[name].link(name, q)),
		})
	}
	return links
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.internalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn("failed to write page", zap.String("page", name), zap.Error(err))
	}
}

// page загружает набор данных и параметры для страницы с фильтрами.
func (h *Handlers) page(w http.ResponseWriter, r *http.Request) ([]models.Restaurant, query, bool) {
	q, err := parseQuery(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return nil, query{}, false
	}
	rs, ok := h.restaurants(w, r)
	if !ok {
		return nil, query{}, false
	}
	return rs, q, true
}

// HomePage отдает стартовую страницу с описанием дашборда.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home.html", pageData{Title: "Home", Active: "home"})
}

// MainPage отдает общие метрики и карту ресторанов.
func (h *Handlers) MainPage(w http.ResponseWriter, r *http.Request) {
	rs, q, ok := h.page(w, r)
	if !ok {
		return
	}

	h.render(w, r, "main.html", pageData{
		Title:  "Main Page",
		Active: "main",
		Filters: &filterForm{
			Action:    "/main",
			Countries: options(analytics.CountryOptions(rs), q.Countries),
		},
		Overview:   analytics.Overview(q.countryScope(rs)),
		MarkersURL: "/api/map/markers?" + q.encode(false, false),
	})
}

// CountriesPage отдает диаграммы по странам.
func (h *Handlers) CountriesPage(w http.ResponseWriter, r *http.Request) {
	rs, q, ok := h.page(w, r)
	if !ok {
		return
	}

	h.render(w, r, "countries.html", pageData{
		Title:  "Countries",
		Active: "countries",
		Filters: &filterForm{
			Action:    "/countries",
			Countries: options(analytics.CountryOptions(rs), q.Countries),
		},
		Charts: chartLinks(q, "countries-restaurants", "countries-cities", "countries-votes", "countries-cost"),
	})
}

// CitiesPage отдает диаграммы по городам.
func (h *Handlers) CitiesPage(w http.ResponseWriter, r *http.Request) {
	rs, q, ok := h.page(w, r)
	if !ok {
		return
	}

	h.render(w, r, "cities.html", pageData{
		Title:  "Cities",
		Active: "cities",
		Filters: &filterForm{
			Action:    "/cities",
			Countries: options(analytics.CountryOptions(rs), q.Countries),
			ShowLimit: true,
			Limit:     q.Limit,
			MaxLimit:  analytics.MaxLimit,
		},
		Charts: chartLinks(q, "cities-restaurants", "cities-rated-above", "cities-rated-below", "cities-cuisines"),
		Limit:  q.Limit,
	})
}

// CuisinesPage отдает лучшие рестораны, топ ресторанов и диаграммы по кухням.
func (h *Handlers) CuisinesPage(w http.ResponseWriter, r *http.Request) {
	rs, q, ok := h.page(w, r)
	if !ok {
		return
	}

	byCountry := q.countryScope(rs)
	scoped := q.cuisineScope(rs)

	h.render(w, r, "cuisines.html", pageData{
		Title:  "Cuisines",
		Active: "cuisines",
		Filters: &filterForm{
			Action:       "/cuisines",
			Countries:    options(analytics.CountryOptions(rs), q.Countries),
			Cuisines:     options(analytics.CuisineOptions(byCountry), q.Cuisines),
			ShowCuisines: true,
			ShowLimit:    true,
			Limit:        q.Limit,
			MaxLimit:     analytics.MaxLimit,
		},
		Featured:  analytics.Featured(scoped),
		Top:       analytics.TopRestaurants(scoped, q.Limit),
		Charts:    chartLinks(q, "cuisines-best", "cuisines-worst"),
		Limit:     q.Limit,
		ExportURL: template.URL("/api/cuisines/top-restaurants.xlsx?" + q.encode(true, true)),
	})
}
