package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dapurkita/backoffice/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPendingNotFound = errors.New("pending user not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrSelfDelete      = errors.New("cannot delete yourself")
)

// ApprovalService owns the pending → approved/rejected state machine.
// Resolution is signalled by deleting the PendingUser row inside one
// transaction, so a reader never sees a half-resolved state and the loser
// of a concurrent resolution gets ErrPendingNotFound.
type ApprovalService struct {
	db *gorm.DB
}

func NewApprovalService(db *gorm.DB) *ApprovalService {
	return &ApprovalService{db: db}
}

// Approve resolves a pending user into an approved ADMIN. Approving an
// email that already has a User row updates that row instead of creating a
// duplicate. A missing pending row means the resolution already happened
// (double-approve, or a concurrent resolver won); that is a no-op success.
func (s *ApprovalService) Approve(pendingID uuid.UUID) (*models.User, string, error) {
	var resolved *models.User
	var message string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pending models.PendingUser
		if err := tx.First(&pending, "id = ?", pendingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				message = "Pendaftaran sudah diproses sebelumnya"
				return nil
			}
			return fmt.Errorf("failed to load pending user: %w", err)
		}

		var existing models.User
		err := tx.Where("email = ?", pending.Email).First(&existing).Error
		switch {
		case err == nil && !existing.IsApproved:
			if err := tx.Model(&existing).Update("is_approved", true).Error; err != nil {
				return fmt.Errorf("failed to approve existing user: %w", err)
			}
			existing.IsApproved = true
			resolved = &existing
			message = fmt.Sprintf("Pendaftaran Admin %s berhasil disetujui", pending.Email)

		case err == nil:
			resolved = &existing
			message = fmt.Sprintf("Pendaftaran Admin %s sudah disetujui sebelumnya", pending.Email)

		case errors.Is(err, gorm.ErrRecordNotFound):
			user := models.User{
				ID:         uuid.New(),
				Email:      pending.Email,
				Role:       models.RoleAdmin,
				IsApproved: true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}
			resolved = &user
			message = fmt.Sprintf("Pendaftaran Admin %s berhasil disetujui", pending.Email)

		default:
			return fmt.Errorf("failed to look up user: %w", err)
		}

		return tx.Delete(&pending).Error
	})
	if err != nil {
		return nil, "", err
	}
	return resolved, message, nil
}

// Reject deletes the pending row without creating a User.
func (s *ApprovalService) Reject(pendingID uuid.UUID) (string, error) {
	var email string
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pending models.PendingUser
		if err := tx.First(&pending, "id = ?", pendingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPendingNotFound
			}
			return fmt.Errorf("failed to load pending user: %w", err)
		}
		email = pending.Email
		return tx.Delete(&pending).Error
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Pendaftaran Admin %s ditolak", email), nil
}

func (s *ApprovalService) ListPending() ([]models.PendingUser, error) {
	var pending []models.PendingUser
	if err := s.db.Order("created_at ASC").Find(&pending).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending users: %w", err)
	}
	return pending, nil
}

func (s *ApprovalService) ListApproved() ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("is_approved = ?", true).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list approved users: %w", err)
	}
	return users, nil
}

// DeleteAdmin removes a User. The acting super admin may not delete their
// own row. The matching identity is removed best-effort; a failure there
// never rolls back the user delete.
func (s *ApprovalService) DeleteAdmin(actorID, targetID uuid.UUID) error {
	if actorID == targetID {
		return ErrSelfDelete
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err := s.db.Where("id = ? OR email = ?", user.ID, user.Email).
		Delete(&models.Identity{}).Error; err != nil {
		slog.Error("failed to delete identity for removed admin",
			"user_id", user.ID.String(), "error", err)
	}
	return nil
}

// ResolveEntry is the protected-area entry point. It resolves the caller's
// User row by identity ID or email — correcting a stale row ID in place —
// and then attempts the one-time bootstrap promotion. A nil user with a nil
// error means the identity has no User row at all.
func (s *ApprovalService) ResolveEntry(identityID uuid.UUID, email string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", identityID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = s.db.Where("email = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user: %w", err)
		}

		// Row predates the identity: adopt the identity's ID in place so
		// role and approval state stay on one logical user.
		if err := s.db.Model(&models.User{}).Where("id = ?", user.ID).
			Update("id", identityID).Error; err != nil {
			return nil, fmt.Errorf("failed to reconcile user id: %w", err)
		}
		user.ID = identityID
	} else if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	if err := s.bootstrapSuperAdmin(&user); err != nil {
		slog.Error("super admin bootstrap failed", "user_id", user.ID.String(), "error", err)
	}
	return &user, nil
}

// bootstrapSuperAdmin promotes the user to SUPER_ADMIN in a single
// conditional statement that only matches while no SUPER_ADMIN row exists.
// Together with the partial unique index on role this makes the promotion
// first-wins under concurrency; the loser's update matches zero rows and
// the user stays ADMIN.
func (s *ApprovalService) bootstrapSuperAdmin(user *models.User) error {
	if user.Role == models.RoleSuperAdmin {
		return nil
	}

	result := s.db.Exec(
		"UPDATE users SET role = ?, is_approved = ? WHERE id = ? AND NOT EXISTS (SELECT 1 FROM users WHERE role = ?)",
		models.RoleSuperAdmin, true, user.ID, models.RoleSuperAdmin,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		user.Role = models.RoleSuperAdmin
		user.IsApproved = true
		slog.Info("first user promoted to super admin", "user_id", user.ID.String())
	}
	return nil
}
