package models

import (
	"time"

	"github.com/google/uuid"
)

// Identity is an authentication account. It exists independently of User:
// signing up creates an Identity, approval creates the User. Login is
// possible as soon as the email is confirmed; the approval gate is separate.
type Identity struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email            string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name             string     `gorm:"size:255" json:"name"`
	Password         string     `gorm:"not null" json:"-"`
	AuthProvider     string     `gorm:"size:50;default:'email'" json:"-"`
	EmailConfirmedAt *time.Time `json:"-"`
	ConfirmTokenHash *string    `gorm:"size:64;index" json:"-"`
	ResetTokenHash   *string    `gorm:"size:64;index" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (i *Identity) Confirmed() bool {
	return i.EmailConfirmedAt != nil
}

// RefreshToken stores the SHA-256 hash of an issued refresh token.
type RefreshToken struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IdentityID uuid.UUID `gorm:"type:uuid;not null;index" json:"identity_id"`
	TokenHash  string    `gorm:"size:64;not null;uniqueIndex" json:"-"`
	ExpiresAt  time.Time `gorm:"not null" json:"expires_at"`
	Revoked    bool      `gorm:"not null;default:false" json:"revoked"`
	CreatedAt  time.Time `json:"created_at"`
}
