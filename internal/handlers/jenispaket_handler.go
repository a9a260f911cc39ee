package handlers

import (
	"errors"

	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/dapurkita/backoffice/internal/services"
	"github.com/gofiber/fiber/v2"
)

type JenisPaketHandler struct {
	pakets *services.JenisPaketService
}

func NewJenisPaketHandler(pakets *services.JenisPaketService) *JenisPaketHandler {
	return &JenisPaketHandler{pakets: pakets}
}

func (h *JenisPaketHandler) List(c *fiber.Ctx) error {
	out, err := h.pakets.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(out)
}

func (h *JenisPaketHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid ID",
		})
	}

	paket, err := h.pakets.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrJenisPaketNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(paket)
}

func (h *JenisPaketHandler) Create(c *fiber.Ctx) error {
	var req dto.JenisPaketRequest
	if err := c.BodyParser(&req); err != nil || req.NamaPaket == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Nama paket is required",
		})
	}

	paket, err := h.pakets.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(paket)
}

func (h *JenisPaketHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid ID",
		})
	}

	var req dto.JenisPaketRequest
	if err := c.BodyParser(&req); err != nil || req.NamaPaket == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Nama paket is required",
		})
	}

	paket, err := h.pakets.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrJenisPaketNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(paket)
}

func (h *JenisPaketHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid ID",
		})
	}

	if err := h.pakets.Delete(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrJenisPaketNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrJenisPaketInUse):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Jenis paket deleted successfully"})
}
