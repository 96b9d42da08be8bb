package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coldline/catalog/models"
)

// GetCategoryDistribution godoc
// @Summary Get category distribution
// @Description Product count per category, largest first
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CategoryCount}
// @Router /store/categories/distribution [get]
func (cc *Controller) GetCategoryDistribution(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category distribution fetched successfully", cc.catalog.Distribution()))
}
