package main

import (
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"

	"tripmate/config"
	"tripmate/middleware"
	"tripmate/routes"
)

func main() {
	logger := log.New(os.Stdout, "SERVER: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Add CORS middleware
	corsConfig := middleware.DefaultCORSConfig()
	if config.AppConfig.AllowedOrigins != "*" {
		corsConfig.AllowedOrigins = strings.Split(config.AppConfig.AllowedOrigins, ",")
	}
	app.Use(middleware.CORS(corsConfig))

	// Setup routes
	routes.SetupRoutes(app, db)

	// Start server
	logger.Printf("🚀 Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
