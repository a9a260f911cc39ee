package services

import (
	"testing"
	"time"

	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/dapurkita/backoffice/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerIdentity(t *testing.T, auth *AuthService, email string) (*models.Identity, string) {
	t.Helper()
	identity, confirmToken, err := auth.Register(&dto.RegisterRequest{
		Email:    email,
		Name:     "Test User",
		Password: "password123",
	})
	require.NoError(t, err)
	return identity, confirmToken
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	registerIdentity(t, auth, "dupe@example.com")

	_, _, err := auth.Register(&dto.RegisterRequest{
		Email:    "dupe@example.com",
		Name:     "Second",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestConfirmEmailStagesPendingUser(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	_, confirmToken := registerIdentity(t, auth, "new@example.com")

	identity, err := auth.ConfirmEmail(confirmToken)
	require.NoError(t, err)
	assert.True(t, identity.Confirmed())
	assert.Nil(t, identity.ConfirmTokenHash)

	var pending models.PendingUser
	require.NoError(t, db.Where("email = ?", "new@example.com").First(&pending).Error)
	assert.Equal(t, "Test User", pending.Name)

	// The same token is spent.
	_, err = auth.ConfirmEmail(confirmToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestConfirmEmailSkipsStagingForResolvedUser(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	_, confirmToken := registerIdentity(t, auth, "known@example.com")
	require.NoError(t, db.Create(&models.User{
		ID:    uuid.New(),
		Email: "known@example.com",
		Role:  models.RoleAdmin,
	}).Error)

	_, err := auth.ConfirmEmail(confirmToken)
	require.NoError(t, err)

	var count int64
	db.Model(&models.PendingUser{}).Where("email = ?", "known@example.com").Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestLoginRequiresConfirmedEmail(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	_, confirmToken := registerIdentity(t, auth, "login@example.com")

	_, err := auth.Login(&dto.LoginRequest{Email: "login@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailNotConfirmed)

	_, err = auth.ConfirmEmail(confirmToken)
	require.NoError(t, err)

	resp, err := auth.Login(&dto.LoginRequest{Email: "login@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "login@example.com", resp.Identity.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	_, confirmToken := registerIdentity(t, auth, "wrongpw@example.com")
	_, err := auth.ConfirmEmail(confirmToken)
	require.NoError(t, err)

	_, err = auth.Login(&dto.LoginRequest{Email: "wrongpw@example.com", Password: "not-the-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(&dto.LoginRequest{Email: "ghost@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	_, confirmToken := registerIdentity(t, auth, "rotate@example.com")
	_, err := auth.ConfirmEmail(confirmToken)
	require.NoError(t, err)

	first, err := auth.Login(&dto.LoginRequest{Email: "rotate@example.com", Password: "password123"})
	require.NoError(t, err)

	second, err := auth.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// Replaying the rotated-out token fails.
	_, err = auth.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	_, confirmToken := registerIdentity(t, auth, "logout@example.com")
	_, err := auth.ConfirmEmail(confirmToken)
	require.NoError(t, err)

	resp, err := auth.Login(&dto.LoginRequest{Email: "logout@example.com", Password: "password123"})
	require.NoError(t, err)

	require.NoError(t, auth.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = auth.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetPasswordRevokesSessions(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	_, confirmToken := registerIdentity(t, auth, "reset@example.com")
	_, err := auth.ConfirmEmail(confirmToken)
	require.NoError(t, err)

	session, err := auth.Login(&dto.LoginRequest{Email: "reset@example.com", Password: "password123"})
	require.NoError(t, err)

	resetToken, err := auth.ForgotPassword("reset@example.com")
	require.NoError(t, err)

	require.NoError(t, auth.ResetPassword(&dto.ResetPasswordRequest{
		Token:       resetToken,
		NewPassword: "newpassword456",
	}))

	_, err = auth.Login(&dto.LoginRequest{Email: "reset@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(&dto.LoginRequest{Email: "reset@example.com", Password: "newpassword456"})
	require.NoError(t, err)

	_, err = auth.Refresh(&dto.RefreshRequest{RefreshToken: session.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	_, confirmToken := registerIdentity(t, auth, "expired@example.com")
	_, err := auth.ConfirmEmail(confirmToken)
	require.NoError(t, err)

	resetToken, err := auth.ForgotPassword("expired@example.com")
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(&models.Identity{}).
		Where("email = ?", "expired@example.com").
		Update("reset_token_expiry", past).Error)

	err = auth.ResetPassword(&dto.ResetPasswordRequest{
		Token:       resetToken,
		NewPassword: "newpassword456",
	})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	_, err := auth.ForgotPassword("nobody@example.com")
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestCheckApprovalStates(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db, testConfig())

	resp, err := auth.CheckApproval("nobody@example.com")
	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Nil(t, resp.Role)

	require.NoError(t, db.Create(&models.User{
		ID:         uuid.New(),
		Email:      "admin@example.com",
		Role:       models.RoleAdmin,
		IsApproved: true,
	}).Error)

	resp, err = auth.CheckApproval("admin@example.com")
	require.NoError(t, err)
	assert.True(t, resp.Found)
	require.NotNil(t, resp.Role)
	assert.Equal(t, models.RoleAdmin, *resp.Role)
	assert.True(t, resp.IsApproved)
}
