package handlers

import (
	"errors"

	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/dapurkita/backoffice/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SettingHandler struct {
	settings *services.SettingService
}

func NewSettingHandler(settings *services.SettingService) *SettingHandler {
	return &SettingHandler{settings: settings}
}

func (h *SettingHandler) List(c *fiber.Ctx) error {
	out, err := h.settings.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(out)
}

func (h *SettingHandler) Create(c *fiber.Ctx) error {
	var req dto.SettingRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.NoTelp == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Email and noTelp are required",
		})
	}

	setting, err := h.settings.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(setting)
}

func (h *SettingHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid ID",
		})
	}

	var req dto.SettingRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.NoTelp == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Email and noTelp are required",
		})
	}

	setting, err := h.settings.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrSettingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(setting)
}
