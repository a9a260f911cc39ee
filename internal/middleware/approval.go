package middleware

import (
	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/dapurkita/backoffice/internal/models"
	"github.com/dapurkita/backoffice/internal/services"
	"github.com/gofiber/fiber/v2"
)

const currentUserKey = "current_user"

// ApprovedRequired is the protected-area gate. A valid session is not
// enough: the caller must resolve to an approved User row. The resolution
// also fixes stale row IDs and performs the one-time SUPER_ADMIN bootstrap.
// Unapproved callers get an explicit pending-approval signal so the client
// can show the right banner.
func ApprovedRequired(approvals *services.ApprovalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identityID, err := IdentityID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		email, err := IdentityEmail(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		user, err := approvals.ResolveEntry(identityID, email)
		if err != nil {
			// A failed role resolution is never treated as a grant.
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden",
			})
		}
		if user == nil || !user.IsApproved {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Akun Anda belum disetujui. Menunggu persetujuan Super Admin.",
			})
		}

		c.Locals(currentUserKey, user)
		return c.Next()
	}
}

// SuperAdminRequired must run after ApprovedRequired.
func SuperAdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		if user.Role != models.RoleSuperAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Super Admin access required",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the approved User resolved by ApprovedRequired.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}
