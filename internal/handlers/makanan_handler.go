package handlers

import (
	"errors"

	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/dapurkita/backoffice/internal/services"
	"github.com/gofiber/fiber/v2"
)

type MakananHandler struct {
	makanan *services.MakananService
}

func NewMakananHandler(makanan *services.MakananService) *MakananHandler {
	return &MakananHandler{makanan: makanan}
}

func (h *MakananHandler) List(c *fiber.Ctx) error {
	out, err := h.makanan.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(out)
}

func (h *MakananHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid ID",
		})
	}

	row, err := h.makanan.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrMakananNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(row)
}

func (h *MakananHandler) Create(c *fiber.Ctx) error {
	req, errResp := parseMakananRequest(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}

	row, err := h.makanan.Create(req)
	if err != nil {
		return makananError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (h *MakananHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid ID",
		})
	}

	req, errResp := parseMakananRequest(c)
	if errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(*errResp)
	}

	row, err := h.makanan.Update(uint(id), req)
	if err != nil {
		return makananError(c, err)
	}
	return c.JSON(row)
}

func (h *MakananHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid ID",
		})
	}

	if err := h.makanan.Delete(c.Context(), uint(id)); err != nil {
		return makananError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Makanan deleted successfully"})
}

func parseMakananRequest(c *fiber.Ctx) (*dto.MakananRequest, *dto.ErrorResponse) {
	var req dto.MakananRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, &dto.ErrorResponse{Error: true, Message: "Invalid request body"}
	}
	if req.NamaMakanan == "" || req.Deskripsi == "" || req.Harga <= 0 || req.JenisPaketID == 0 {
		return nil, &dto.ErrorResponse{Error: true, Message: "All fields are required"}
	}
	return &req, nil
}

func makananError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMakananNotFound),
		errors.Is(err, services.ErrJenisPaketNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidFoto):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
