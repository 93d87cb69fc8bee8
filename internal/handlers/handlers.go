// Package handlers содержит HTTP обработчики REST API и HTML страниц дашборда ресторанов.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/akozadaev/toeat_restaurants/internal/models"
	"github.com/akozadaev/toeat_restaurants/internal/storage"
)

// restaurantFinder реализуется источниками с точечным доступом по id.
type restaurantFinder interface {
	GetRestaurant(ctx context.Context, id int) (*models.Restaurant, error)
}

// Handlers содержит зависимости для обработки HTTP запросов.
// Каждый запрос заново получает очищенный набор данных из source.
type Handlers struct {
	source storage.Source       // Источник записей ресторанов
	dicts  storage.Dictionaries // Справочники: PostgreSQL или встроенные
	log    *zap.Logger
	pages  *template.Template
}

// NewHandlers создает новый экземпляр Handlers.
func NewHandlers(source storage.Source, dicts storage.Dictionaries, log *zap.Logger) *Handlers {
	return &Handlers{
		source: source,
		dicts:  dicts,
		log:    log,
		pages:  parsePages(),
	}
}

// Register регистрирует маршруты API, диаграмм и страниц.
func (h *Handlers) Register(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/filters", h.GetFilters).Methods(http.MethodGet)
	api.HandleFunc("/overview", h.GetOverview).Methods(http.MethodGet)
	api.HandleFunc("/map/markers", h.GetMarkers).Methods(http.MethodGet)
	api.HandleFunc("/countries", h.GetCountries).Methods(http.MethodGet)
	api.HandleFunc("/cities", h.GetCities).Methods(http.MethodGet)
	api.HandleFunc("/cuisines", h.GetCuisines).Methods(http.MethodGet)
	api.HandleFunc("/cuisines/top-restaurants.xlsx", h.ExportTopRestaurants).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{id}", h.GetRestaurant).Methods(http.MethodGet)

	router.HandleFunc("/charts/{name}.svg", h.GetChart).Methods(http.MethodGet)

	router.HandleFunc("/dictionaries/countries", h.GetCountryDictionary).Methods(http.MethodGet)
	router.HandleFunc("/dictionaries/rating-colors", h.GetRatingColorDictionary).Methods(http.MethodGet)
	router.HandleFunc("/dictionaries/price-categories", h.GetPriceCategoryDictionary).Methods(http.MethodGet)

	router.HandleFunc("/", h.HomePage).Methods(http.MethodGet)
	router.HandleFunc("/main", h.MainPage).Methods(http.MethodGet)
	router.HandleFunc("/countries", h.CountriesPage).Methods(http.MethodGet)
	router.HandleFunc("/cities", h.CitiesPage).Methods(http.MethodGet)
	router.HandleFunc("/cuisines", h.CuisinesPage).Methods(http.MethodGet)
}

// HealthCheck обрабатывает GET запрос на проверку работоспособности сервиса.
// Эндпоинт: GET /health
//
// @Summary      Проверка работоспособности сервиса
// @Description  Возвращает статус сервиса. Используется для мониторинга и проверки доступности.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// restaurants загружает очищенный набор данных для текущего запроса.
func (h *Handlers) restaurants(w http.ResponseWriter, r *http.Request) ([]models.Restaurant, bool) {
	rs, err := h.source.Restaurants(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return nil, false
	}
	return rs, true
}

// params разбирает параметры запроса, на ошибке отвечает 400.
func (h *Handlers) params(w http.ResponseWriter, r *http.Request) (query, bool) {
	q, err := parseQuery(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return query{}, false
	}
	return q, true
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *Handlers) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	h.writeError(w, http.StatusInternalServerError, "internal server error")
}

// findRestaurant ищет запись по id: напрямую в индексе, если источник это умеет,
// иначе в очищенном наборе.
func (h *Handlers) findRestaurant(ctx context.Context, id int) (*models.Restaurant, error) {
	if finder, ok := h.source.(restaurantFinder); ok {
		return finder.GetRestaurant(ctx, id)
	}

	rs, err := h.source.Restaurants(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rs {
		if rs[i].ID == id {
			return &rs[i], nil
		}
	}
	return nil, storage.ErrRestaurantNotFound
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrRestaurantNotFound)
}
