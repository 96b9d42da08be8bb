package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coldline/catalog/models"
	"github.com/coldline/catalog/services"
)

// Controller serves category enumeration endpoints.
type Controller struct {
	catalog *services.CatalogService
}

func NewController(catalog *services.CatalogService) *Controller {
	return &Controller{catalog: catalog}
}

// GetCategories godoc
// @Summary Get storefront categories
// @Description Sorted labels of the categories present in the catalog
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Router /store/categories [get]
func (cc *Controller) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", cc.catalog.Categories()))
}
