// @title Coldline Catalog API
// @version 1.0
// @description Read-only storefront API over a refrigeration equipment catalog
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	category_cache "github.com/coldline/catalog/cache"
	"github.com/coldline/catalog/catalog"
	"github.com/coldline/catalog/classifier"
	"github.com/coldline/catalog/config"
	_ "github.com/coldline/catalog/docs"
	"github.com/coldline/catalog/engine"
	"github.com/coldline/catalog/middleware"
	"github.com/coldline/catalog/routes"
	"github.com/coldline/catalog/services"
)

const shutdownTimeout = 15 * time.Second

func init() {
	config.LoadDotEnv()
}

func main() {
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	// Load the dataset once; it is read-only from here on
	store, err := catalog.Open(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	meta := store.Metadata()
	logger.Info("catalog loaded",
		zap.String("source", sourceName(cfg.DataPath)),
		zap.String("category", meta.Category),
		zap.Int("products", meta.LoadedCount),
	)

	cls := classifier.New(classifier.DefaultRules(), classifier.WithCache(category_cache.New()))
	catalogService := services.NewCatalogService(store, engine.New(cls), logger)

	limiter, closeLimiter := newLimiter(ctx, cfg, logger)
	defer func() {
		if err := closeLimiter(); err != nil {
			logger.Warn("failed to close Redis client", zap.Error(err))
		}
	}()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(routes.Options{
		Catalog:        catalogService,
		Logger:         logger,
		Metrics:        middleware.NewMetrics(),
		Limiter:        limiter,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("🚀 Server is running", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	logger.Info("HTTP server stopped gracefully")
	return nil
}

// newLimiter prefers Redis so limits are shared between replicas, and falls
// back to per-process buckets when Redis is absent or unreachable. The
// returned func releases the Redis client, if any.
func newLimiter(ctx context.Context, cfg config.Config, logger *zap.Logger) (middleware.Limiter, func() error) {
	if cfg.RedisURL != "" {
		client, err := config.ConnectRedis(ctx, cfg.RedisURL)
		if err == nil {
			logger.Info("rate limiting via Redis")
			return middleware.NewRedisLimiter(client, cfg.RateLimitRequests, cfg.RateLimitWindow), client.Close
		}
		logger.Warn("Redis unavailable, using in-memory rate limiting", zap.Error(err))
	}
	return middleware.NewMemoryLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow), func() error { return nil }
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
