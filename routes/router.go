package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	store_product "github.com/coldline/catalog/controllers/ecommerce/product_controller"
	"github.com/coldline/catalog/middleware"
	"github.com/coldline/catalog/models"
	"github.com/coldline/catalog/routes/ecommerce_routes"
	"github.com/coldline/catalog/services"
)

// Options carries everything the HTTP surface needs.
type Options struct {
	Catalog        *services.CatalogService
	Logger         *zap.Logger
	Metrics        *middleware.Metrics
	Limiter        middleware.Limiter
	AllowedOrigins []string
}

// NewRouter builds the gin engine: shared middleware, the /api/v1 storefront
// group, health, metrics and the swagger UI.
func NewRouter(opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
	}

	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", gin.H{
			"products": opts.Catalog.Metadata().LoadedCount,
		}))
	})
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	if opts.Limiter != nil {
		api.Use(middleware.RateLimiter(opts.Limiter, logger))
	}

	var recorder store_product.SearchRecorder
	if opts.Metrics != nil {
		recorder = opts.Metrics
	}
	ecommerce_routes.SetupStorefrontRoutes(api, opts.Catalog, recorder, logger)

	return router
}
