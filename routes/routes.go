package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ecotrack-api/config"
	"ecotrack-api/controllers"
	"ecotrack-api/middleware"
	"ecotrack-api/repositories"
	"ecotrack-api/services"
)

func SetupCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	return cors.New(corsConfig)
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, mailer controllers.Mailer) {
	scoreRepo := repositories.NewEcoScoreRepository(db, cfg.StoreTimeout)
	scoreService := services.NewEcoScoreService(scoreRepo, cfg.ReferenceAverageScore)

	authController := controllers.NewAuthController(db, scoreRepo, cfg.JWTSecret, mailer)
	ecoScoreController := controllers.NewEcoScoreController(scoreService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Auth routes (public, rate limited)
	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit(30, 10))
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/verify-email/:verificationToken", authController.VerifyEmail)
		auth.POST("/login", authController.Login)
	}

	// Account routes requiring a resolved identity
	account := r.Group("/auth")
	account.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		account.POST("/delete-account", authController.DeleteAccount)
	}

	api := r.Group("/api")
	{
		// Compute is public: pure function, nothing persisted
		api.POST("/calculate-eco-score", ecoScoreController.Calculate)

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			protected.POST("/save-eco-score", ecoScoreController.Save)
			protected.GET("/get-eco-scores", ecoScoreController.GetHistory)
			protected.DELETE("/delete-eco-score/:scoreId", ecoScoreController.Delete)
		}
	}
}
