package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"experimenthub/database"
	"experimenthub/internal/controllers"
	"experimenthub/internal/repository"
	"experimenthub/internal/services"
	"experimenthub/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "uploads"
	}
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(database.DB)
	otpRepo := repository.NewResetOTPRepository(database.DB)
	experimentRepo := repository.NewExperimentRepository(database.DB)

	// Reset workflow with SMTP delivery
	resetWorkflow := services.NewResetWorkflow(userRepo, otpRepo, services.NewSMTPMailer())

	// Controllers
	authController := controllers.NewAuthController(userRepo)
	resetController := controllers.NewPasswordResetController(resetWorkflow)
	experimentController := controllers.NewExperimentController(experimentRepo, uploadsDir)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "ExperimentHub API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	router.Static("/uploads", uploadsDir)

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterPasswordResetRoutes(router, resetController)
	routes.RegisterExperimentRoutes(router, experimentController)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"database_health": false, "error": err.Error()})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{"database_health": err == nil && result == 1})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("ExperimentHub API server starting on port %s", port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
