package controllers

import (
	"studyjam/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// GetHealth godoc
// @Summary Service health
// @Description Reports whether the service and the participant store are reachable
// @Tags health
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/health [get]
func (hc *HealthController) GetHealth(c *fiber.Ctx) error {
	store := "up"
	if hc.DB == nil {
		store = "down"
	} else if sqlDB, err := hc.DB.DB(); err != nil || sqlDB.Ping() != nil {
		store = "down"
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"status": "ok",
		"store":  store,
	})
}
