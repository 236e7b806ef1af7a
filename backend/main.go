package main

import (
	"log"

	"studyjam/backend/config"
	"studyjam/backend/middleware"
	"studyjam/backend/routes"
	"studyjam/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration; missing store credentials is fatal
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Connect to the participant store. An unreachable store is not fatal:
	// the dashboard serves zero-valued statistics until it comes back.
	db, err := utils.InitDB(cfg)
	if err != nil {
		logger.Printf("Error initializing database: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, cfg, logger)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
