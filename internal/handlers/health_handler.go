package handlers

import (
	"github.com/ahmetcoskunkizilkaya/research-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/research-api/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	cfg *config.Config
	db  *gorm.DB
}

func NewHealthHandler(cfg *config.Config, db *gorm.DB) *HealthHandler {
	return &HealthHandler{cfg: cfg, db: db}
}

// Root serves the service banner.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.BannerResponse{
		Message: "Research Assistant API is running",
		Version: config.Version,
	})
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if sqlDB, err := h.db.DB(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:      "healthy",
		Version:     config.Version,
		Environment: h.cfg.Environment,
		DB:          dbStatus,
	})
}
