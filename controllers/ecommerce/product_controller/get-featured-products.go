package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coldline/catalog/models"
)

// GetFeaturedProducts godoc
// @Summary Get featured products
// @Description First NSF-listed products of the unfiltered catalog
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontProduct}
// @Router /store/products/featured [get]
func (pc *Controller) GetFeaturedProducts(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured products fetched successfully", pc.catalog.Featured()))
}
