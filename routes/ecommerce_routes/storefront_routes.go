package ecommerce_routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	store_analytics "github.com/coldline/catalog/controllers/ecommerce/analytics_controller"
	store_category "github.com/coldline/catalog/controllers/ecommerce/category_controller"
	store_filter "github.com/coldline/catalog/controllers/ecommerce/filter_controller"
	store_product "github.com/coldline/catalog/controllers/ecommerce/product_controller"
	"github.com/coldline/catalog/services"
)

func SetupStorefrontRoutes(router *gin.RouterGroup, catalog *services.CatalogService, recorder store_product.SearchRecorder, logger *zap.Logger) {
	productCtl := store_product.NewController(catalog, recorder, logger)
	categoryCtl := store_category.NewController(catalog)
	filterCtl := store_filter.NewController(catalog, logger)
	analyticsCtl := store_analytics.NewController(catalog)

	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", productCtl.GetStorefrontProducts)        // List with filters
		products.GET("/featured", productCtl.GetFeaturedProducts) // Default-view highlights
	}

	// Category routes
	categories := store.Group("/categories")
	{
		categories.GET("", categoryCtl.GetCategories)
		categories.GET("/distribution", categoryCtl.GetCategoryDistribution)
	}

	// Dataset statistics
	stats := store.Group("/stats")
	{
		stats.GET("/prices", analyticsCtl.GetPriceStats)
		stats.GET("/overview", analyticsCtl.GetCatalogOverview)
	}

	filters := store.Group("/filters")
	{
		filters.GET("/metadata", filterCtl.GetFilterMetadata)
		filters.GET("/state", filterCtl.DecodeFilterState)
		filters.POST("/state", filterCtl.EncodeFilterState)
	}
}
