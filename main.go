package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"ecotrack-api/config"
	"ecotrack-api/database"
	"ecotrack-api/jobs"
	"ecotrack-api/repositories"
	"ecotrack-api/routes"
	"ecotrack-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database (fails fast when the store is unreachable)
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(routes.SetupCORS())

	emailService := services.NewEmailService(cfg)
	routes.SetupRoutes(router, db, cfg, emailService)

	// Prune accounts that never completed verification
	scoreRepo := repositories.NewEcoScoreRepository(db, cfg.StoreTimeout)
	cleanupJob := jobs.NewAccountCleanupJob(db, scoreRepo, time.Hour, cfg.UnverifiedRetention)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	log.Printf("Starting EcoTrack API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
