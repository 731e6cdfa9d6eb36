package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"solar-payback/internal/api/handlers"
	"solar-payback/internal/api/middleware"
	"solar-payback/internal/config"
	"solar-payback/internal/data"
	"solar-payback/internal/observability/metrics"
	"solar-payback/internal/payback"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfgPath := os.Getenv("CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No config file at %s, using defaults", cfgPath)
			cfg = config.Default()
		} else {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// The reference data is the ground truth of every calculation: if it
	// cannot be loaded the process must not come up.
	ref, err := data.LoadReferenceData(cfg.Data)
	if err != nil {
		log.Fatalf("Failed to load reference data: %v", err)
	}
	log.Printf("Loaded reference data: production=%d consumption=%d wholesale=%d samples",
		ref.Production.Len(), ref.Consumption.Len(), ref.Wholesale.Len())

	engine, err := payback.New(ref, cfg)
	if err != nil {
		log.Fatalf("Failed to initialise engine: %v", err)
	}
	prices := engine.GridPrices()
	log.Printf("Derived grid prices: buy=%.4f sell=%.4f EUR/kWh", prices.Buy, prices.Sell)

	metrics.Init()

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(metrics.GinMiddleware())

	// Initialize handlers
	paybackHandler := handlers.NewPaybackHandler(engine)
	profilesHandler := handlers.NewProfilesHandler(ref, prices)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/payback", paybackHandler.CalculatePaybackTime)
		api.POST("/optimal-wp", paybackHandler.CalculateOptimalWp)
		api.POST("/payback/report", paybackHandler.ExportReport)

		api.GET("/profiles", profilesHandler.ListProfiles)
		api.GET("/prices", profilesHandler.GetPrices)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
