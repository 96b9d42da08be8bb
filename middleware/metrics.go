package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coldline/catalog/models"
)

// Metrics holds the storefront Prometheus collectors.
type Metrics struct {
	registry        *prometheus.Registry
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	SearchResults   prometheus.Histogram
	FilteredSearch  *prometheus.CounterVec
}

// NewMetrics registers the collectors on a fresh registry, so tests can build
// as many as they like.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catalog_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
		SearchResults: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "catalog_search_results",
			Help:    "Number of products returned per search",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 200, 500},
		}),
		FilteredSearch: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Searches by which filters were active",
		}, []string{"text", "category"}),
	}
}

// Middleware records request counts and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// ObserveSearch records one search and its result size.
func (m *Metrics) ObserveSearch(state models.FilterState, results int) {
	text := strconv.FormatBool(state.SearchText != "")
	category := strconv.FormatBool(state.CategoryFilter != models.AllCategories && state.CategoryFilter != "")
	m.FilteredSearch.WithLabelValues(text, category).Inc()
	m.SearchResults.Observe(float64(results))
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
