package services

import (
	"go.uber.org/zap"

	"github.com/coldline/catalog/catalog"
	"github.com/coldline/catalog/engine"
	"github.com/coldline/catalog/filterstate"
	"github.com/coldline/catalog/models"
)

// CatalogService answers storefront questions over the injected store. It
// holds no mutable state and is shared by all request goroutines.
type CatalogService struct {
	store  *catalog.Store
	engine *engine.Engine
	logger *zap.Logger
}

// NewCatalogService wires a service. A nil logger is replaced by a no-op one.
func NewCatalogService(store *catalog.Store, eng *engine.Engine, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if eng == nil {
		eng = engine.New(nil)
	}
	return &CatalogService{store: store, engine: eng, logger: logger}
}

// Browse renders the catalog for one filter state.
func (s *CatalogService) Browse(state models.FilterState) models.CatalogView {
	products := s.store.Products()
	filtered := s.engine.SearchState(products, state)
	decorated := s.decorate(filtered, false)

	view := models.CatalogView{
		State:      state,
		Query:      filterstate.ToQuery(state),
		ShareQuery: filterstate.Encode(state),
		HasFilters: state.HasFilters(),
		Total:      len(filtered),
		Categories: s.engine.ListCategories(products),
		Products:   decorated,
		Featured:   []models.StorefrontProduct{},
		Regular:    decorated,
	}

	// The featured strip only shows on the unfiltered catalog.
	if !view.HasFilters {
		featured, regular := engine.SplitFeatured(filtered, engine.FeaturedLimit)
		if len(featured) > 0 {
			view.Featured = s.decorate(featured, true)
			view.Regular = s.decorate(regular, false)
		}
	}

	s.logger.Debug("catalog browsed",
		zap.String("q", state.SearchText),
		zap.String("cat", state.CategoryFilter),
		zap.Int("matches", view.Total),
	)
	return view
}

// Featured returns the featured selection of the default view.
func (s *CatalogService) Featured() []models.StorefrontProduct {
	return s.decorate(engine.Featured(s.store.Products(), engine.FeaturedLimit), true)
}

// Categories lists the labels present in the dataset.
func (s *CatalogService) Categories() []string {
	return s.engine.ListCategories(s.store.Products())
}

// Distribution counts products per label, largest first.
func (s *CatalogService) Distribution() []models.CategoryCount {
	return s.engine.CategoryDistribution(s.store.Products())
}

// PriceStats summarises the dataset's price samples; nil when none parse.
func (s *CatalogService) PriceStats() *models.PriceStats {
	return engine.PriceStatistics(s.store.PriceSamples())
}

// Metadata returns the advisory dataset description.
func (s *CatalogService) Metadata() models.DatasetMetadata {
	return s.store.Metadata()
}

// FilterMetadata bundles everything a filter sidebar needs.
func (s *CatalogService) FilterMetadata() models.FilterMetadata {
	meta := s.store.Metadata()
	return models.FilterMetadata{
		Categories:   s.Categories(),
		Distribution: s.Distribution(),
		PriceStats:   s.PriceStats(),
		Dataset:      &meta,
	}
}

// Resolve returns the canonical serialized form of state.
func (s *CatalogService) Resolve(state models.FilterState) models.FilterQuery {
	return models.FilterQuery{
		State:      state,
		Query:      filterstate.ToQuery(state),
		ShareQuery: filterstate.Encode(state),
	}
}

func (s *CatalogService) decorate(products []models.Product, featured bool) []models.StorefrontProduct {
	out := make([]models.StorefrontProduct, len(products))
	for i, p := range products {
		out[i] = models.StorefrontProduct{
			Name:     p.Name,
			Image:    p.Image,
			URL:      p.URL,
			Category: s.engine.Classify(p.Name),
			Featured: featured,
		}
	}
	return out
}
