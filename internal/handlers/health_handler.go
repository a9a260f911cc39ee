package handlers

import (
	"time"

	"github.com/dapurkita/backoffice/internal/config"
	"github.com/dapurkita/backoffice/internal/database"
	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Bucket:    h.cfg.S3Bucket,
	})
}
