package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coldline/catalog/models"
)

// GetCatalogOverview godoc
// @Summary Get catalog overview
// @Description Advisory dataset metadata as supplied by the loader, plus the loaded product count
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.DatasetMetadata}
// @Router /store/stats/overview [get]
func (ac *Controller) GetCatalogOverview(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog overview fetched successfully", ac.catalog.Metadata()))
}
