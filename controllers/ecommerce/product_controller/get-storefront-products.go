package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coldline/catalog/models"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Filter the catalog by free text and category. Order follows the dataset; there is no pagination.
// @Tags store
// @Produce json
// @Param q query string false "Case-insensitive substring of the product name"
// @Param cat query string false "Category label; omitted means All"
// @Success 200 {object} models.ApiResponse{data=models.CatalogView}
// @Router /store/products [get]
func (pc *Controller) GetStorefrontProducts(c *gin.Context) {
	state := parseFilterState(c)
	view := pc.catalog.Browse(state)

	if pc.recorder != nil {
		pc.recorder.ObserveSearch(state, view.Total)
	}
	if view.Total == 0 {
		pc.logger.Info("search returned no products",
			zap.String("q", state.SearchText),
			zap.String("cat", state.CategoryFilter),
		)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", view))
}
