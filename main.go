package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fixitnow-server/config"
	"fixitnow-server/database"
	"fixitnow-server/jobs"
	"fixitnow-server/middleware"
	"fixitnow-server/routes"
	"fixitnow-server/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Optional demo data for local development
	if os.Getenv("SEED_DEMO") == "true" {
		if err := seedDemoData(); err != nil {
			log.Printf("Demo seeding failed: %v", err)
		}
	}

	// Set Gin mode
	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security headers first, then input validation and rate limiting
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.InputValidationMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "FixItNow server is running",
			"time":    time.Now().UTC(),
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		// Auth routes with stricter rate limiting
		authRoutes := api.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(authRoutes)

		// Location lookup (public)
		locationRoutes := api.Group("/location")
		routes.RegisterLocationRoutes(locationRoutes)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/me", routes.GetCurrentUser)

			userRoutes := protected.Group("/users")
			routes.RegisterUserRoutes(userRoutes)

			workerRoutes := protected.Group("/workers")
			routes.RegisterWorkerRoutes(workerRoutes)

			bookingRoutes := protected.Group("/bookings")
			routes.RegisterBookingRoutes(bookingRoutes)

			adminRoutes := protected.Group("/admin")
			adminRoutes.Use(middleware.AdminMiddleware())
			routes.RegisterAdminRoutes(adminRoutes)
		}
	}

	// Background job: cancel stale pending bookings
	expirationJob := jobs.NewExpirationJob()
	expirationJob.Start()
	defer expirationJob.Stop()

	// Daily cleanup of expired refresh tokens
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			jwtService := services.NewJWTService()
			if err := jwtService.CleanupExpiredTokens(); err != nil {
				log.Printf("Token cleanup failed: %v", err)
			}
		}
	}()

	port := config.AppConfig.Server.Port

	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// allowedOrigins reads CORS_ORIGINS (comma separated) with a local dev default
func allowedOrigins() []string {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{"http://localhost:3000"}
}
