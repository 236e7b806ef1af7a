package controllers

import (
	"log"

	"studyjam/backend/config"
	"studyjam/backend/models"
	"studyjam/backend/repository"
	"studyjam/backend/services"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	Source repository.ParticipantSource
	Cfg    *config.Config
	Logger *log.Logger
}

func NewDashboardController(source repository.ParticipantSource, cfg *config.Config, logger *log.Logger) *DashboardController {
	return &DashboardController{Source: source, Cfg: cfg, Logger: logger}
}

// GetHomeData godoc
// @Summary Get home page statistics
// @Description Returns aggregate statistics: totals, top performer and badge popularity
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.HomeStats
// @Router /api/home-data [get]
func (dc *DashboardController) GetHomeData(c *fiber.Ctx) error {
	records := dc.fetchRecords()
	summaries, labCounts := services.ComputeSummaries(records, dc.Cfg.Labs)
	return c.JSON(services.HomeStatsFrom(summaries, labCounts, dc.Cfg.Labs))
}

// GetProgressData godoc
// @Summary Get the leaderboard
// @Description Returns the lab catalog and every participant with rank and progress
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.ProgressData
// @Router /api/progress-data [get]
func (dc *DashboardController) GetProgressData(c *fiber.Ctx) error {
	records := dc.fetchRecords()
	summaries, _ := services.ComputeSummaries(records, dc.Cfg.Labs)
	return c.JSON(models.ProgressData{
		Labs:         dc.Cfg.Labs,
		Participants: summaries,
	})
}

// fetchRecords degrades a store failure to an empty dataset: the dashboard renders
// zero-valued statistics instead of surfacing an HTTP error.
func (dc *DashboardController) fetchRecords() []models.ParticipantRecord {
	records, err := dc.Source.FetchAll()
	if err != nil {
		dc.Logger.Printf("Error fetching participants: %v", err)
		return nil
	}
	return records
}
