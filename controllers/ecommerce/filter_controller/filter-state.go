package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coldline/catalog/filterstate"
	"github.com/coldline/catalog/models"
)

// DecodeFilterState godoc
// @Summary Decode filter state
// @Description Restores the filter state from q and cat, echoing its canonical query
// @Tags store
// @Produce json
// @Param q query string false "Search text"
// @Param cat query string false "Category label"
// @Success 200 {object} models.ApiResponse{data=models.FilterQuery}
// @Router /store/filters/state [get]
func (fc *Controller) DecodeFilterState(c *gin.Context) {
	state := filterstate.FromValues(c.Request.URL.Query())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter state decoded", fc.catalog.Resolve(state)))
}

// encodeFilterStateRequest allows omitting either field; omitted fields take
// their defaults.
type encodeFilterStateRequest struct {
	SearchText     *string `json:"searchText" example:"cooler"`
	CategoryFilter *string `json:"categoryFilter" example:"Upright"`
}

// EncodeFilterState godoc
// @Summary Encode filter state
// @Description Serializes a filter state into its shareable query parameters
// @Tags store
// @Accept json
// @Produce json
// @Param state body models.FilterState true "Filter state"
// @Success 200 {object} models.ApiResponse{data=models.FilterQuery}
// @Failure 400 {object} models.ApiResponse
// @Router /store/filters/state [post]
func (fc *Controller) EncodeFilterState(c *gin.Context) {
	var req encodeFilterStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fc.logger.Warn("invalid filter state body", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid filter state"))
		return
	}

	state := models.DefaultFilterState()
	if req.SearchText != nil {
		state.SearchText = *req.SearchText
	}
	if req.CategoryFilter != nil && *req.CategoryFilter != "" {
		state.CategoryFilter = *req.CategoryFilter
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter state encoded", fc.catalog.Resolve(state)))
}
