package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"econlab/internal/api/handlers"
	"econlab/internal/api/middleware"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	log := middleware.NewLogger()

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	solveHandler := handlers.NewSolveHandler()
	catalogHandler := handlers.NewCatalogHandler()
	marketHandler := handlers.NewMarketHandler()
	competitionHandler := handlers.NewCompetitionHandler()
	differentiationHandler := handlers.NewDifferentiationHandler()
	auctionHandler := handlers.NewAuctionHandler()
	gameHandler := handlers.NewGameHandler()
	networkHandler := handlers.NewNetworkHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.GET("/catalog", catalogHandler.ListModules)

		api.POST("/solve", solveHandler.Solve)
		api.POST("/sweep", solveHandler.Sweep)

		api.POST("/market/compare", marketHandler.Compare)
		api.POST("/market/diagram", marketHandler.Diagram)

		api.POST("/competition/compare", competitionHandler.Compare)

		api.POST("/differentiation/welfare", differentiationHandler.Welfare)

		api.POST("/auction/compare", auctionHandler.Compare)
		api.POST("/auction/revenue-equivalence", auctionHandler.RevenueEquivalence)
		api.POST("/auction/optimal-reserve", auctionHandler.OptimalReserve)

		api.POST("/game/nash", gameHandler.Nash)
		api.POST("/game/repeated", gameHandler.Repeated)

		api.POST("/network/tipping", networkHandler.Tipping)
		api.POST("/network/adoption-chart", networkHandler.AdoptionChart)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Info("starting API server", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}
