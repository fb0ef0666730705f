package main

import (
	"concierge/database"
	"concierge/docs"
	"concierge/internal/cache"
	"concierge/internal/controllers"
	"concierge/internal/recommend"
	"concierge/internal/repository"
	"concierge/internal/services"
	"concierge/routes"
	"log"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Concierge API"
	docs.SwaggerInfo.Description = "Concierge booking API with lifestyle-based service recommendations."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to database; schema setup is fatal on failure
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Redis is best effort; a miss on every read is slower, not broken
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Redis unavailable, running without cache: %v", err)
		redisClient = nil
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	resetRepo := repository.NewResetPasswordRepository(database.DB)
	profileRepo := repository.NewLifestyleProfileRepository(database.DB)
	preferenceRepo := repository.NewPreferenceRepository(database.DB)
	recommendationRepo := repository.NewRecommendationRepository(database.DB)
	bookingRepo := repository.NewBookingRepository(database.DB)
	notificationRepo := repository.NewNotificationRepository(database.DB)

	// Recommendation service
	recommendService := recommend.NewService(
		profileRepo,
		preferenceRepo,
		recommendationRepo,
		bookingRepo,
		recommend.DefaultAlgorithmVersion,
	)

	// Notification worker
	workerCount := runtime.NumCPU()
	if workerCount < 3 {
		workerCount = 3
	}

	notificationWorker := services.NewNotificationWorker(notificationRepo, redisClient, workerCount)
	log.Printf("Starting notification worker with %d workers...", workerCount)
	notificationWorker.Start()
	defer notificationWorker.Stop()

	// Initialize controllers
	authController := controllers.NewAuthController(userRepo, resetRepo)
	lifestyleController := controllers.NewLifestyleController(profileRepo, preferenceRepo, redisClient)
	recommendationController := controllers.NewRecommendationController(recommendService, redisClient, recommendationRepo)
	bookingController := controllers.NewBookingController(bookingRepo, notificationWorker)
	notificationController := controllers.NewNotificationController(notificationRepo, redisClient)
	adminController := controllers.NewAdminController(bookingRepo, notificationWorker)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "Concierge API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": "PostgreSQL",
			"cache":    redisClient != nil,
		})
	})

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterLifestyleRoutes(router, lifestyleController)
	routes.RegisterRecommendationRoutes(router, recommendationController)
	routes.RegisterBookingRoutes(router, bookingController)
	routes.RegisterNotificationRoutes(router, notificationController)
	routes.RegisterAdminRoutes(router, adminController, userRepo)
	routes.RegisterSwaggerRoutes(router)

	// Debug endpoints
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(200, gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  m.Alloc / 1024 / 1024,
			"worker":     notificationWorker.GetStatus(),
		})
	})

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		isHealthy := err == nil && result == 1

		c.JSON(200, gin.H{
			"database_health": isHealthy,
		})
	})

	router.GET("/debug/redis", func(c *gin.Context) {
		if redisClient == nil {
			c.JSON(200, gin.H{"connected": false})
			return
		}
		status, err := redisClient.GetStatus()
		if err != nil {
			c.JSON(500, gin.H{"connected": false, "error": err.Error()})
			return
		}
		c.JSON(200, status)
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
