// Package storage содержит источники записей ресторанов (CSV, Elasticsearch/OpenSearch)
// и хранилище справочников в PostgreSQL.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"

	"github.com/akozadaev/toeat_restaurants/internal/dataset"
	"github.com/akozadaev/toeat_restaurants/internal/models"
)

// ErrRestaurantNotFound возвращается, если ресторана нет в индексе.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// DefaultBulkBatch - размер пачки документов для Bulk API по умолчанию.
const DefaultBulkBatch = 500

// DefaultFetchSize - размер страницы выборки индекса по умолчанию.
const DefaultFetchSize = 10000

// ElasticsearchStorage предоставляет методы для работы с Elasticsearch/OpenSearch.
// Массовые операции и поиск идут прямыми HTTP запросами для совместимости с OpenSearch.
type ElasticsearchStorage struct {
	client     *elasticsearch.Client // Официальный клиент Elasticsearch
	index      string                // Имя индекса ресторанов
	httpClient *http.Client          // HTTP клиент для прямых запросов
	baseURL    string                // Базовый URL Elasticsearch/OpenSearch
	fetchSize  int                   // Размер страницы при выборке всего индекса
	log        *zap.Logger
	observer   LoadObserver
}

// NewElasticsearchStorage создает новый экземпляр ElasticsearchStorage.
func NewElasticsearchStorage(client *elasticsearch.Client, index, baseURL string, fetchSize int, log *zap.Logger) *ElasticsearchStorage {
	if fetchSize <= 0 {
		fetchSize = DefaultFetchSize
	}
	return &ElasticsearchStorage{
		client:     client,
		index:      index,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		fetchSize:  fetchSize,
		log:        log,
	}
}

// WithObserver подключает наблюдателя выборок Restaurants.
func (es *ElasticsearchStorage) WithObserver(observer LoadObserver) *ElasticsearchStorage {
	es.observer = observer
	return es
}

// CreateIndex создает индекс с заданным маппингом.
// Если индекс уже существует, функция возвращает nil без ошибки.
func (es *ElasticsearchStorage) CreateIndex(ctx context.Context, mappingJSON string) error {
	res, err := es.client.Indices.Exists([]string{es.index}, es.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	res, err = es.client.Indices.Create(
		es.index,
		es.client.Indices.Create.WithBody(strings.NewReader(mappingJSON)),
		es.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error creating index: %s", string(body))
	}

	return nil
}

// IndexRestaurant индексирует один ресторан. Документ с тем же restaurant_id перезаписывается.
func (es *ElasticsearchStorage) IndexRestaurant(ctx context.Context, restaurant *models.Restaurant) error {
	body, err := json.Marshal(restaurant)
	if err != nil {
		return fmt.Errorf("failed to marshal restaurant: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      es.index,
		DocumentID: strconv.Itoa(restaurant.ID),
		Body:       bytes.NewReader(body),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, es.client)
	if err != nil {
		return fmt.Errorf("failed to index restaurant: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error indexing restaurant: %s", string(body))
	}

	return nil
}

// BulkIndexRestaurants индексирует рестораны пачками по batchSize документов через Bulk API.
func (es *ElasticsearchStorage) BulkIndexRestaurants(ctx context.Context, restaurants []models.Restaurant, batchSize int) error {
	if batchSize <= 0 {
		batchSize = DefaultBulkBatch
	}

	for start := 0; start < len(restaurants); start += batchSize {
		end := start + batchSize
		if end > len(restaurants) {
			end = len(restaurants)
		}

		if err := es.bulk(ctx, restaurants[start:end]); err != nil {
			return fmt.Errorf("batch %d-%d: %w", start, end, err)
		}
		es.log.Debug("bulk batch indexed", zap.Int("from", start), zap.Int("to", end))
	}

	return nil
}

func (es *ElasticsearchStorage) bulk(ctx context.Context, restaurants []models.Restaurant) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	for i := range restaurants {
		meta := map[string]interface{}{
			"index": map[string]interface{}{
				"_index": es.index,
				"_id":    strconv.Itoa(restaurants[i].ID),
			},
		}
		if err := enc.Encode(meta); err != nil {
			return fmt.Errorf("failed to encode meta: %w", err)
		}
		if err := enc.Encode(&restaurants[i]); err != nil {
			return fmt.Errorf("failed to encode restaurant: %w", err)
		}
	}

	url := fmt.Sprintf("%s/_bulk?refresh=true", es.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-ndjson")

	res, err := es.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to bulk index: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error bulk indexing: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			ID     string          `json:"_id"`
			Status int             `json:"status"`
			Error  json.RawMessage `json:"error"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode bulk response: %w", err)
	}

	if result.Errors {
		for _, item := range result.Items {
			for _, op := range item {
				if op.Status >= 300 {
					return fmt.Errorf("error bulk indexing document %s: status %d: %s", op.ID, op.Status, string(op.Error))
				}
			}
		}
		return fmt.Errorf("error bulk indexing: response reported errors")
	}

	return nil
}

// GetRestaurant получает ресторан по restaurant_id.
func (es *ElasticsearchStorage) GetRestaurant(ctx context.Context, id int) (*models.Restaurant, error) {
	url := fmt.Sprintf("%s/%s/_doc/%d", es.baseURL, es.index, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	res, err := es.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrRestaurantNotFound
	}

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("error getting restaurant: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Found  bool              `json:"found"`
		Source models.Restaurant `json:"_source"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.Found {
		return nil, ErrRestaurantNotFound
	}

	return &result.Source, nil
}

// Restaurants выбирает все документы индекса, отсортированные по restaurant_id.
// Реализует Source, когда дашборд работает поверх индекса.
func (es *ElasticsearchStorage) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	started := time.Now()
	restaurants, err := es.search(ctx)
	if es.observer != nil {
		stats := dataset.Stats{RawRows: len(restaurants), CleanedRows: len(restaurants)}
		es.observer.ObserveLoad("elasticsearch", started, stats, err)
	}
	return restaurants, err
}

// search выбирает индекс страницами по fetchSize документов,
// продолжая каждую следующую страницу через search_after по restaurant_id.
func (es *ElasticsearchStorage) search(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	var after []interface{}

	for {
		page, total, err := es.searchPage(ctx, after)
		if err != nil {
			return nil, err
		}
		if restaurants == nil {
			restaurants = make([]models.Restaurant, 0, total)
		}
		restaurants = append(restaurants, page...)

		if len(page) == 0 || len(page) < es.fetchSize {
			break
		}
		after = []interface{}{page[len(page)-1].ID}
	}

	es.log.Debug("index fetched", zap.String("index", es.index), zap.Int("count", len(restaurants)))
	return restaurants, nil
}

func (es *ElasticsearchStorage) searchPage(ctx context.Context, after []interface{}) ([]models.Restaurant, int, error) {
	query := map[string]interface{}{
		"size": es.fetchSize,
		"query": map[string]interface{}{
			"match_all": map[string]interface{}{},
		},
		"sort": []map[string]interface{}{
			{
				"restaurant_id": map[string]interface{}{
					"order": "asc",
				},
			},
		},
	}
	if after != nil {
		query["search_after"] = after
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, 0, fmt.Errorf("failed to encode query: %w", err)
	}

	url := fmt.Sprintf("%s/%s/_search", es.baseURL, es.index)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := es.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return nil, 0, fmt.Errorf("error searching: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Restaurant `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, 0, fmt.Errorf("failed to decode response: %w", err)
	}

	restaurants := make([]models.Restaurant, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		restaurants = append(restaurants, hit.Source)
	}

	return restaurants, result.Hits.Total.Value, nil
}
