package handlers

import (
	"errors"

	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/dapurkita/backoffice/internal/middleware"
	"github.com/dapurkita/backoffice/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	approvals *services.ApprovalService
}

func NewAdminHandler(approvals *services.ApprovalService) *AdminHandler {
	return &AdminHandler{approvals: approvals}
}

func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	var req dto.ApproveRequest
	if err := c.BodyParser(&req); err != nil || req.PendingUserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Pending user ID is required",
		})
	}

	pendingID, err := uuid.Parse(req.PendingUserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid pending user ID",
		})
	}

	user, message, err := h.approvals.Approve(pendingID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.ApprovalResponse{Success: true, Message: message, User: user})
}

func (h *AdminHandler) Reject(c *fiber.Ctx) error {
	var req dto.RejectRequest
	if err := c.BodyParser(&req); err != nil || req.PendingUserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Pending user ID is required",
		})
	}

	pendingID, err := uuid.Parse(req.PendingUserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid pending user ID",
		})
	}

	message, err := h.approvals.Reject(pendingID)
	if err != nil {
		if errors.Is(err, services.ErrPendingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: message})
}

func (h *AdminHandler) ListPending(c *fiber.Ctx) error {
	pending, err := h.approvals.ListPending()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(pending)
}

func (h *AdminHandler) ListApproved(c *fiber.Ctx) error {
	users, err := h.approvals.ListApproved()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(users)
}

func (h *AdminHandler) DeleteAdmin(c *fiber.Ctx) error {
	targetRaw := c.Query("id")
	if targetRaw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin ID is required",
		})
	}
	targetID, err := uuid.Parse(targetRaw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid admin ID",
		})
	}

	actor := middleware.CurrentUser(c)
	if actor == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.approvals.DeleteAdmin(actor.ID, targetID); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfDelete):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Cannot delete yourself",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Admin deleted successfully"})
}
