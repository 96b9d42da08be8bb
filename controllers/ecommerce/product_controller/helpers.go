package product_controller

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coldline/catalog/filterstate"
	"github.com/coldline/catalog/models"
	"github.com/coldline/catalog/services"
)

// SearchRecorder observes the size of each search result.
type SearchRecorder interface {
	ObserveSearch(state models.FilterState, results int)
}

// Controller serves the storefront product endpoints.
type Controller struct {
	catalog  *services.CatalogService
	recorder SearchRecorder
	logger   *zap.Logger
}

func NewController(catalog *services.CatalogService, recorder SearchRecorder, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{catalog: catalog, recorder: recorder, logger: logger}
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// parseFilterState reads q and cat from the request query string.
func parseFilterState(c *gin.Context) models.FilterState {
	return filterstate.FromValues(c.Request.URL.Query())
}
