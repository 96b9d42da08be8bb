package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coldline/catalog/models"
	"github.com/coldline/catalog/services"
)

// Controller serves filter metadata and filter-state serialization.
type Controller struct {
	catalog *services.CatalogService
	logger  *zap.Logger
}

func NewController(catalog *services.CatalogService, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{catalog: catalog, logger: logger}
}

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns categories, category distribution, price statistics and dataset metadata
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func (fc *Controller) GetFilterMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", fc.catalog.FilterMetadata()))
}
