package routes

import (
	"log"

	"studyjam/backend/config"
	"studyjam/backend/controllers"
	"studyjam/backend/repository"
	"studyjam/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *log.Logger) {
	// Pages
	pagesController := controllers.NewPagesController("./templates")
	app.Get("/", pagesController.Index)
	app.Get("/progress", pagesController.Progress)

	// Dashboard data
	participantRepo := repository.NewParticipantRepository(db, cfg.Labs)
	dashboardController := controllers.NewDashboardController(participantRepo, cfg, logger)
	app.Get("/api/home-data", dashboardController.GetHomeData)
	app.Get("/api/progress-data", dashboardController.GetProgressData)

	// Health
	healthController := controllers.NewHealthController(db)
	app.Get("/api/health", healthController.GetHealth)

	// Fallback for unknown routes
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFound(c, "Resource not found")
	})
}
