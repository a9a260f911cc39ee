package handlers

import (
	"errors"
	"log/slog"

	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/dapurkita/backoffice/internal/middleware"
	"github.com/dapurkita/backoffice/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	identity, confirmToken, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	// TODO: deliver confirmation tokens via SMTP instead of the log stream.
	slog.Info("confirmation token issued",
		"identity_id", identity.ID.String(), "token", confirmToken)

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Success: true,
		Message: "Registrasi berhasil. Silakan cek email Anda untuk konfirmasi.",
	})
}

func (h *AuthHandler) ConfirmEmail(c *fiber.Ctx) error {
	var req dto.ConfirmEmailRequest
	if err := c.BodyParser(&req); err != nil || req.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Confirmation token is required",
		})
	}

	identity, err := h.authService.ConfirmEmail(req.Token)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "Email " + identity.Email + " berhasil dikonfirmasi. Menunggu persetujuan Super Admin.",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Email atau password salah. Silakan periksa kembali.",
			})
		case errors.Is(err, services.ErrEmailNotConfirmed):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Email belum dikonfirmasi. Silakan cek email Anda.",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.authService.Refresh(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.authService.Logout(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Logged out"})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Email is required",
		})
	}

	resetToken, err := h.authService.ForgotPassword(req.Email)
	if err == nil {
		// TODO: deliver reset tokens via SMTP instead of the log stream.
		slog.Info("reset token issued", "email", req.Email, "token", resetToken)
	} else if !errors.Is(err, services.ErrIdentityNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	// Same answer whether or not the email exists.
	return c.JSON(dto.MessageResponse{
		Success: true,
		Message: "Jika email terdaftar, link reset password telah dikirim.",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil || req.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Token and new password are required",
		})
	}

	if err := h.authService.ResetPassword(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: "Password berhasil direset."})
}

// CheckApproval reports the caller's position in the approval workflow.
// Requires only a valid session, not approval.
func (h *AuthHandler) CheckApproval(c *fiber.Ctx) error {
	email, err := middleware.IdentityEmail(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	resp, err := h.authService.CheckApproval(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Database temporarily unavailable. Please try again later.",
		})
	}
	return c.JSON(resp)
}
