package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coldline/catalog/models"
	"github.com/coldline/catalog/services"
)

// Controller serves dataset-level statistics.
type Controller struct {
	catalog *services.CatalogService
}

func NewController(catalog *services.CatalogService) *Controller {
	return &Controller{catalog: catalog}
}

// GetPriceStats godoc
// @Summary Get price statistics
// @Description Min, max, mean, median and count over the parseable price samples. data is null when no sample parses.
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.PriceStats}
// @Router /store/stats/prices [get]
func (ac *Controller) GetPriceStats(c *gin.Context) {
	stats := ac.catalog.PriceStats()
	if stats == nil {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No parseable price samples", nil))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Price statistics fetched successfully", stats))
}
