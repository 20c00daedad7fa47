package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/freshmarket/storefront/internal/catalog"
	"github.com/freshmarket/storefront/internal/handler"
	mid "github.com/freshmarket/storefront/internal/middleware"
	"github.com/freshmarket/storefront/pkg/config"
	"github.com/freshmarket/storefront/pkg/logger"
	"github.com/freshmarket/storefront/prometheus"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		// Just log a warning, don't fail if .env file is not found
		// Env vars may be set directly, the fallback defaults cover the rest
	}

	// Load configuration
	appConfig, err := config.Load("storefront")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storefront", appConfig.LogConfig()...)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize catalog client and search strategy
	client := catalog.NewClient(appConfig)
	searcher := catalog.NewSearcher(appConfig.Search.Strategy, client)
	log.Info("Catalog client initialized",
		zap.String("base_url", appConfig.Catalog.BaseURL),
		zap.String("search_strategy", appConfig.Search.Strategy))

	h := handler.New(appConfig, client, searcher)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Routes
	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Storefront API routes
	api := e.Group("/api")
	api.GET("/home", h.Home)
	api.GET("/categories/:slug", h.Category)
	api.GET("/products/:slug", h.Product)
	api.GET("/search", h.Search)
	api.GET("/search/suggest", h.Suggest)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
