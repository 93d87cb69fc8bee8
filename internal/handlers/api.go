package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/akozadaev/toeat_restaurants/internal/analytics"
	"github.com/akozadaev/toeat_restaurants/internal/export"
	"github.com/akozadaev/toeat_restaurants/internal/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetFilters обрабатывает GET запрос на получение значений фильтров.
// Кухни перечисляются после применения фильтра стран.
// Эндпоинт: GET /api/filters
//
// @Summary      Значения фильтров
// @Description  Возвращает доступные страны и кухни, а также значения фильтров по умолчанию
// @Tags         filters
// @Produce      json
// @Param        country  query     []string  false  "Страны"  collectionFormat(multi)
// @Success      200      {object}  models.FiltersResponse
// @Failure      500      {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /api/filters [get]
func (h *Handlers) GetFilters(w http.ResponseWriter, r *http.Request) {
	q, ok := h.params(w, r)
	if !ok {
		return
	}
	rs, ok := h.restaurants(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, models.FiltersResponse{
		Countries:        analytics.CountryOptions(rs),
		Cuisines:         analytics.CuisineOptions(q.countryScope(rs)),
		DefaultCountries: analytics.DefaultCountries,
		DefaultCuisines:  analytics.DefaultCuisines,
		DefaultLimit:     analytics.DefaultLimit,
		MaxLimit:         analytics.MaxLimit,
	})
}

// GetOverview обрабатывает GET запрос на получение общих метрик.
// Эндпоинт: GET /api/overview
//
// @Summary      Общие метрики
// @Description  Количество стран, ресторанов, городов, оценок и кухонь по выбранным странам
// @Tags         main
// @Produce      json
// @Param        country  query     []string  false  "Страны"  collectionFormat(multi)
// @Success      200      {object}  models.Overview
// @Failure      500      {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /api/overview [get]
func (h *Handlers) GetOverview(w http.ResponseWriter, r *http.Request) {
	q, ok := h.params(w, r)
	if !ok {
		return
	}
	rs, ok := h.restaurants(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, analytics.Overview(q.countryScope(rs)))
}

// GetMarkers обрабатывает GET запрос на получение маркеров карты.
// Эндпоинт: GET /api/map/markers
//
// @Summary      Маркеры карты
// @Description  GeoJSON FeatureCollection: по точке на ресторан с цветом рейтинга и данными всплывающего окна
// @Tags         main
// @Produce      json
// @Param        country  query     []string  false  "Страны"  collectionFormat(multi)
// @Success      200      {object}  analytics.FeatureCollection
// @Failure      500      {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /api/map/markers [get]
func (h *Handlers) GetMarkers(w http.ResponseWriter, r *http.Request) {
	q, ok := h.params(w, r)
	if !ok {
		return
	}
	rs, ok := h.restaurants(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	h.writeJSON(w, http.StatusOK, analytics.Markers(q.countryScope(rs)))
}

// GetCountries обрабатывает GET запрос на получение агрегатов по странам.
// Эндпоинт: GET /api/countries
//
// @Summary      Агрегаты по странам
// @Description  Рестораны, города, средние оценки и средняя стоимость на двоих по странам
// @Tags         countries
// @Produce      json
// @Param        country  query     []string  false  "Страны"  collectionFormat(multi)
// @Success      200      {object}  models.CountriesResponse
// @Failure      500      {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /api/countries [get]
func (h *Handlers) GetCountries(w http.ResponseWriter, r *http.Request) {
	q, ok := h.params(w, r)
	if !ok {
		return
	}
	rs, ok := h.restaurants(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, analytics.Countries(q.countryScope(rs)))
}

// GetCities обрабатывает GET запрос на получение агрегатов по городам.
// Эндпоинт: GET /api/cities
//
// @Summary      Агрегаты по городам
// @Description  Города с наибольшим числом ресторанов, с высоким и низким рейтингом и с наибольшим числом кухонь
// @Tags         cities
// @Produce      json
// @Param        country  query     []string  false  "Страны"  collectionFormat(multi)
// @Param        limit    query     int       false  "Количество строк (0..20)"
// @Success      200      {object}  models.CitiesResponse
// @Failure      400      {object}  map[string]string  "Неверный запрос"
// @Failure      500      {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /api/cities [get]
func (h *Handlers) GetCities(w http.ResponseWriter, r *http.Request) {
	q, ok := h.params(w, r)
	if !ok {
		return
	}
	rs, ok := h.restaurants(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, analytics.Cities(q.countryScope(rs), q.Limit))
}

// GetCuisines обрабатывает GET запрос на получение агрегатов по кухням.
// Эндпоинт: GET /api/cuisines
//
// @Summary      Агрегаты по кухням
// @Description  Лучшие рестораны избранных кухонь, топ ресторанов, лучшие и худшие кухни
// @Tags         cuisines
// @Produce      json
// @Param        country  query     []string  false  "Страны"  collectionFormat(multi)
// @Param        cuisine  query     []string  false  "Кухни"   collectionFormat(multi)
// @Param        limit    query     int       false  "Количество строк (0..20)"
// @Success      200      {object}  models.CuisinesResponse
// @Failure      400      {object}  map[string]string  "Неверный запрос"
// @Failure      500      {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /api/cuisines [get]
func (h *Handlers) GetCuisines(w http.ResponseWriter, r *http.Request) {
	q, ok := h.params(w, r)
	if !ok {
		return
	}
	rs, ok := h.restaurants(w, r)
	if !ok {
		return
	}

	h.writeJSON(w, http.StatusOK, analytics.Cuisines(q.cuisineScope(rs), q.Limit))
}

// ExportTopRestaurants обрабатывает GET запрос на выгрузку топа ресторанов в XLSX.
// Эндпоинт: GET /api/cuisines/top-restaurants.xlsx
//
// @Summary      Выгрузка топа ресторанов
// @Description  Таблица лучших ресторанов страницы кухонь в формате XLSX
// @Tags         cuisines
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        country  query     []string  false  "Страны"  collectionFormat(multi)
// @Param        cuisine  query     []string  false  "Кухни"   collectionFormat(multi)
// @Param        limit    query     int       false  "Количество строк (0..20)"
// @Success      200      {file}    file
// @Failure      400      {object}  map[string]string  "Неверный запрос"
// @Failure      500      {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /api/cuisines/top-restaurants.xlsx [get]
func (h *Handlers) ExportTopRestaurants(w http.ResponseWriter, r *http.Request) {
	q, ok := h.params(w, r)
	if !ok {
		return
	}
	rs, ok := h.restaurants(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteRestaurants(&buf, analytics.TopRestaurants(q.cuisineScope(rs), q.Limit)); err != nil {
		h.internalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="top-restaurants.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn("failed to write xlsx response", zap.Error(err))
	}
}

// GetRestaurant обрабатывает GET запрос на получение ресторана по restaurant_id.
// Эндпоинт: GET /api/restaurants/{id}
//
// @Summary      Получить ресторан
// @Description  Возвращает очищенную запись ресторана по её идентификатору
// @Tags         restaurants
// @Produce      json
// @Param        id   path      int  true  "Идентификатор ресторана"
// @Success      200  {object}  models.Restaurant
// @Failure      400  {object}  map[string]string  "Неверный идентификатор"
// @Failure      404  {object}  map[string]string  "Ресторан не найден"
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /api/restaurants/{id} [get]
func (h *Handlers) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "restaurant id must be an integer")
		return
	}

	restaurant, err := h.findRestaurant(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			h.writeError(w, http.StatusNotFound, "restaurant not found")
			return
		}
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, restaurant)
}

// GetCountryDictionary обрабатывает GET запрос на получение справочника стран.
// Эндпоинт: GET /dictionaries/countries
//
// @Summary      Справочник стран
// @Tags         dictionaries
// @Produce      json
// @Success      200  {array}   models.Country
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /dictionaries/countries [get]
func (h *Handlers) GetCountryDictionary(w http.ResponseWriter, r *http.Request) {
	countries, err := h.dicts.Countries(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, countries)
}

// GetRatingColorDictionary обрабатывает GET запрос на получение справочника цветов рейтинга.
// Эндпоинт: GET /dictionaries/rating-colors
//
// @Summary      Справочник цветов рейтинга
// @Tags         dictionaries
// @Produce      json
// @Success      200  {array}   models.RatingColor
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /dictionaries/rating-colors [get]
func (h *Handlers) GetRatingColorDictionary(w http.ResponseWriter, r *http.Request) {
	colors, err := h.dicts.RatingColors(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, colors)
}

// GetPriceCategoryDictionary обрабатывает GET запрос на получение справочника ценовых категорий.
// Эндпоинт: GET /dictionaries/price-categories
//
// @Summary      Справочник ценовых категорий
// @Tags         dictionaries
// @Produce      json
// @Success      200  {array}   models.PriceCategory
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /dictionaries/price-categories [get]
func (h *Handlers) GetPriceCategoryDictionary(w http.ResponseWriter, r *http.Request) {
	prices, err := h.dicts.PriceCategories(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, prices)
}
