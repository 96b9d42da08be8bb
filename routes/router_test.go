package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldline/catalog/catalog"
	"github.com/coldline/catalog/engine"
	"github.com/coldline/catalog/middleware"
	"github.com/coldline/catalog/models"
	"github.com/coldline/catalog/services"
)

type envelope struct {
	Message   string              `json:"message"`
	Data      json.RawMessage     `json:"data"`
	Error     bool                `json:"error"`
	Rate      *models.RateLimiter `json:"rate_limit"`
	RequestID string              `json:"request_id"`
}

func newTestRouter(t *testing.T, limiter middleware.Limiter) (*gin.Engine, *middleware.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := catalog.LoadEmbedded()
	require.NoError(t, err)

	metrics := middleware.NewMetrics()
	router := NewRouter(Options{
		Catalog: services.NewCatalogService(store, engine.New(nil), nil),
		Metrics: metrics,
		Limiter: limiter,
	})
	return router, metrics
}

func do(t *testing.T, r http.Handler, method, target string, body []byte) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func productNames(products []models.StorefrontProduct) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestStorefrontProducts_DefaultView(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w, env := do(t, r, http.MethodGet, "/api/v1/store/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view models.CatalogView
	require.NoError(t, json.Unmarshal(env.Data, &view))

	assert.False(t, view.HasFilters)
	assert.Equal(t, 24, view.Total)
	assert.Len(t, view.Products, 24)
	assert.Equal(t, models.DefaultFilterState(), view.State)
	assert.Empty(t, view.ShareQuery)
	assert.Equal(t, []string{
		"True T-23-HC One Section Reach In Refrigerator NSF",
		"True GDM-26 Swing Glass Door Merchandiser NSF",
	}, productNames(view.Featured))
	assert.Len(t, view.Regular, 22)
	assert.NotEmpty(t, env.RequestID)
}

func TestStorefrontProducts_Filtered(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	_, env := do(t, r, http.MethodGet, "/api/v1/store/products?q=REACH&cat=Reach-In", nil)

	var view models.CatalogView
	require.NoError(t, json.Unmarshal(env.Data, &view))

	assert.True(t, view.HasFilters)
	assert.Equal(t, 3, view.Total)
	assert.Empty(t, view.Featured)
	assert.Equal(t, "cat=Reach-In&q=REACH", view.ShareQuery)
	for _, p := range view.Products {
		assert.Equal(t, "Reach-In", p.Category)
		assert.False(t, p.Featured)
	}
}

func TestStorefrontProducts_OtherCategory(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	_, env := do(t, r, http.MethodGet, "/api/v1/store/products?cat=Other", nil)

	var view models.CatalogView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, []string{
		"Walk-In Cooler Condensing Unit",
		"Ice Machine Head 500 lb",
		"Blast Chiller 10 Pan",
	}, productNames(view.Products))
}

func TestFeaturedProducts(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	_, env := do(t, r, http.MethodGet, "/api/v1/store/products/featured", nil)

	var featured []models.StorefrontProduct
	require.NoError(t, json.Unmarshal(env.Data, &featured))
	require.Len(t, featured, 2)
	assert.True(t, featured[0].Featured)
	assert.Equal(t, "Reach-In", featured[0].Category)
	assert.Equal(t, "Merchandiser", featured[1].Category)
}

func TestCategories(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	_, env := do(t, r, http.MethodGet, "/api/v1/store/categories", nil)

	var labels []string
	require.NoError(t, json.Unmarshal(env.Data, &labels))
	assert.Equal(t, []string{
		"Bakery Case", "Bar Cooler", "Buffet/Salad Bar", "Chef Base", "Display Case",
		"Glass Door", "Merchandiser", "Other", "Prep Table", "Reach-In",
		"Undercounter", "Upright", "Worktop",
	}, labels)
}

func TestCategoryDistribution(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	_, env := do(t, r, http.MethodGet, "/api/v1/store/categories/distribution", nil)

	var dist []models.CategoryCount
	require.NoError(t, json.Unmarshal(env.Data, &dist))
	require.Len(t, dist, 13)
	assert.Equal(t, []models.CategoryCount{
		{Name: "Reach-In", Count: 3},
		{Name: "Merchandiser", Count: 3},
		{Name: "Other", Count: 3},
	}, dist[:3])

	total := 0
	for _, d := range dist {
		total += d.Count
	}
	assert.Equal(t, 24, total)
}

func TestPriceStats(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	_, env := do(t, r, http.MethodGet, "/api/v1/store/stats/prices", nil)

	var stats models.PriceStats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 8, stats.Count)
	assert.InDelta(t, 849.99, stats.Min, 1e-9)
	assert.InDelta(t, 12400, stats.Max, 1e-9)
	assert.InDelta(t, 2999, stats.Median, 1e-9)
	assert.InDelta(t, 3981.56125, stats.Mean, 1e-6)
}

func TestCatalogOverview(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	_, env := do(t, r, http.MethodGet, "/api/v1/store/stats/overview", nil)

	var meta models.DatasetMetadata
	require.NoError(t, json.Unmarshal(env.Data, &meta))
	assert.Equal(t, 188, meta.TotalProducts)
	assert.Equal(t, 24, meta.LoadedCount)
}

func TestFilterMetadata(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	_, env := do(t, r, http.MethodGet, "/api/v1/store/filters/metadata", nil)

	var meta models.FilterMetadata
	require.NoError(t, json.Unmarshal(env.Data, &meta))
	assert.Len(t, meta.Categories, 13)
	assert.Len(t, meta.Distribution, 13)
	require.NotNil(t, meta.PriceStats)
	require.NotNil(t, meta.Dataset)
	assert.Equal(t, 24, meta.Dataset.LoadedCount)
}

func TestFilterState_Decode(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	_, env := do(t, r, http.MethodGet, "/api/v1/store/filters/state?q=cooler&cat=", nil)

	var fq models.FilterQuery
	require.NoError(t, json.Unmarshal(env.Data, &fq))
	assert.Equal(t, models.FilterState{SearchText: "cooler", CategoryFilter: models.AllCategories}, fq.State)
	assert.Equal(t, map[string]string{"q": "cooler"}, fq.Query)
	assert.Equal(t, "q=cooler", fq.ShareQuery)
}

func TestFilterState_Encode(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w, env := do(t, r, http.MethodPost, "/api/v1/store/filters/state",
		[]byte(`{"searchText":"cooler","categoryFilter":"Upright"}`))
	require.Equal(t, http.StatusOK, w.Code)

	var fq models.FilterQuery
	require.NoError(t, json.Unmarshal(env.Data, &fq))
	assert.Equal(t, "cat=Upright&q=cooler", fq.ShareQuery)

	_, env = do(t, r, http.MethodPost, "/api/v1/store/filters/state", []byte(`{}`))
	fq = models.FilterQuery{}
	require.NoError(t, json.Unmarshal(env.Data, &fq))
	assert.Equal(t, models.DefaultFilterState(), fq.State)
	assert.Empty(t, fq.Query)
}

func TestFilterState_EncodeRejectsBadBody(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	w, env := do(t, r, http.MethodPost, "/api/v1/store/filters/state", []byte(`{"searchText":`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, env.Error)
}

func TestRateLimit(t *testing.T) {
	r, _ := newTestRouter(t, middleware.NewMemoryLimiter(1, time.Hour))

	w, env := do(t, r, http.MethodGet, "/api/v1/store/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Rate)
	assert.Equal(t, 1, env.Rate.Limit)

	w, _ = do(t, r, http.MethodGet, "/api/v1/store/categories", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Other routes have their own window.
	w, _ = do(t, r, http.MethodGet, "/api/v1/store/categories/distribution", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Health sits outside the limited group.
	w, _ = do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	do(t, r, http.MethodGet, "/api/v1/store/products?q=nsf", nil)
	w, _ := do(t, r, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `catalog_http_requests_total{method="GET",route="/api/v1/store/products",status="200"} 1`)
	assert.Contains(t, w.Body.String(), `catalog_searches_total{category="false",text="true"} 1`)
}
