package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// User is an authorized back-office principal. The ID is expected to match
// the identity record's ID, but a row created through approval may carry a
// placeholder ID until the first protected-area entry reconciles it.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email      string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Role       string    `gorm:"size:20;not null;default:'ADMIN'" json:"role"`
	IsApproved bool      `gorm:"not null;default:false" json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PendingUser stages a confirmed identity until a super admin resolves it.
// Rows are deleted on resolution, never updated; whoever deletes the row
// owns the resolution.
type PendingUser struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name         string    `gorm:"size:255" json:"name"`
	AuthProvider string    `gorm:"size:50;default:'email'" json:"authProvider"`
	CreatedAt    time.Time `json:"createdAt"`
}
