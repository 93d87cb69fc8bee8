// Package metrics содержит метрики Prometheus для HTTP сервера и загрузки набора данных.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akozadaev/toeat_restaurants/internal/dataset"
)

// Metrics хранит коллекторы приложения в собственном реестре.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	loadDuration    *prometheus.HistogramVec
	droppedRows     prometheus.Counter
	loadedRows      prometheus.Gauge
}

// New создает и регистрирует коллекторы.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "toeat",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "toeat",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		loadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "toeat",
			Name:      "dataset_load_duration_seconds",
			Help:      "Time spent loading and cleaning the dataset.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source", "result"}),
		droppedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "toeat",
			Name:      "dataset_dropped_rows_total",
			Help:      "Rows removed by the cleaning pipeline.",
		}),
		loadedRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "toeat",
			Name:      "dataset_rows",
			Help:      "Rows in the last cleaned dataset.",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.loadDuration,
		m.droppedRows,
		m.loadedRows,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler отдает метрики в формате Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveLoad записывает длительность и результат загрузки набора данных.
func (m *Metrics) ObserveLoad(source string, started time.Time, stats dataset.Stats, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.loadDuration.WithLabelValues(source, result).Observe(time.Since(started).Seconds())
	if err == nil {
		m.droppedRows.Add(float64(stats.Dropped()))
		m.loadedRows.Set(float64(stats.CleanedRows))
	}
}

// Middleware считает запросы по шаблону маршрута mux.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(started).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
