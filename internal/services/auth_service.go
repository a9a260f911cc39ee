package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/dapurkita/backoffice/internal/config"
	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/dapurkita/backoffice/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotConfirmed  = errors.New("email not confirmed")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrIdentityNotFound   = errors.New("identity not found")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register creates an unconfirmed identity and returns the raw
// confirmation token for delivery.
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.Identity, string, error) {
	if len(req.Email) == 0 || len(req.Password) < 8 {
		return nil, "", errors.New("email required and password must be at least 8 characters")
	}

	var existing models.Identity
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	rawToken, tokenHash, err := generateOpaqueToken()
	if err != nil {
		return nil, "", err
	}

	identity := models.Identity{
		ID:               uuid.New(),
		Email:            req.Email,
		Name:             req.Name,
		Password:         string(hash),
		AuthProvider:     "email",
		ConfirmTokenHash: &tokenHash,
	}

	if err := s.db.Create(&identity).Error; err != nil {
		return nil, "", fmt.Errorf("failed to create identity: %w", err)
	}

	return &identity, rawToken, nil
}

// ConfirmEmail verifies a confirmation token and moves the identity from
// unknown to pending: once confirmed, a PendingUser row is staged unless the
// email is already resolved to a User.
func (s *AuthService) ConfirmEmail(token string) (*models.Identity, error) {
	tokenHash := hashToken(token)

	var identity models.Identity
	if err := s.db.Where("confirm_token_hash = ?", tokenHash).First(&identity).Error; err != nil {
		return nil, ErrInvalidToken
	}

	now := time.Now()
	if err := s.db.Model(&identity).Updates(map[string]interface{}{
		"email_confirmed_at": now,
		"confirm_token_hash": nil,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to confirm identity: %w", err)
	}
	identity.EmailConfirmedAt = &now
	identity.ConfirmTokenHash = nil

	if err := s.stagePendingUser(&identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// stagePendingUser creates the PendingUser row for a confirmed identity.
// If a User with the email already exists the identity is already resolved
// and nothing is staged; a duplicate pending row is likewise a no-op.
func (s *AuthService) stagePendingUser(identity *models.Identity) error {
	var user models.User
	if err := s.db.Where("email = ?", identity.Email).First(&user).Error; err == nil {
		return nil
	}

	var pending models.PendingUser
	if err := s.db.Where("email = ?", identity.Email).First(&pending).Error; err == nil {
		return nil
	}

	pending = models.PendingUser{
		ID:           uuid.New(),
		Email:        identity.Email,
		Name:         identity.Name,
		AuthProvider: identity.AuthProvider,
	}
	if err := s.db.Create(&pending).Error; err != nil {
		return fmt.Errorf("failed to create pending user: %w", err)
	}
	return nil
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var identity models.Identity
	if err := s.db.Where("email = ?", req.Email).First(&identity).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !identity.Confirmed() {
		return nil, ErrEmailNotConfirmed
	}

	return s.generateTokenPair(&identity)
}

func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	s.db.Model(&stored).Update("revoked", true)

	var identity models.Identity
	if err := s.db.First(&identity, "id = ?", stored.IdentityID).Error; err != nil {
		return nil, fmt.Errorf("identity not found: %w", err)
	}

	return s.generateTokenPair(&identity)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

// ForgotPassword mints a reset token for the identity. The existence of the
// email is not revealed to the caller; a missing identity returns
// ErrIdentityNotFound so the handler can answer with a generic message.
func (s *AuthService) ForgotPassword(email string) (string, error) {
	var identity models.Identity
	if err := s.db.Where("email = ?", email).First(&identity).Error; err != nil {
		return "", ErrIdentityNotFound
	}

	rawToken, tokenHash, err := generateOpaqueToken()
	if err != nil {
		return "", err
	}

	expiry := time.Now().Add(s.cfg.ResetTokenExpiry)
	if err := s.db.Model(&identity).Updates(map[string]interface{}{
		"reset_token_hash":   tokenHash,
		"reset_token_expiry": expiry,
	}).Error; err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	return rawToken, nil
}

func (s *AuthService) ResetPassword(req *dto.ResetPasswordRequest) error {
	if len(req.NewPassword) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	tokenHash := hashToken(req.Token)

	var identity models.Identity
	if err := s.db.Where("reset_token_hash = ?", tokenHash).First(&identity).Error; err != nil {
		return ErrInvalidToken
	}
	if identity.ResetTokenExpiry == nil || time.Now().After(*identity.ResetTokenExpiry) {
		return ErrInvalidToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Model(&identity).Updates(map[string]interface{}{
		"password":           string(hash),
		"reset_token_hash":   nil,
		"reset_token_expiry": nil,
	}).Error; err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	// Revoke open sessions after a password change.
	return s.db.Model(&models.RefreshToken{}).
		Where("identity_id = ?", identity.ID).
		Update("revoked", true).Error
}

// CheckApproval reports the approval-workflow state for an email.
func (s *AuthService) CheckApproval(email string) (*dto.CheckApprovalResponse, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.CheckApprovalResponse{Found: false, Email: email}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return &dto.CheckApprovalResponse{
		Found:      true,
		Email:      user.Email,
		Role:       &user.Role,
		IsApproved: user.IsApproved,
	}, nil
}

func (s *AuthService) generateTokenPair(identity *models.Identity) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(identity)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(identity)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Identity: dto.IdentityResponse{
			ID:        identity.ID,
			Email:     identity.Email,
			Name:      identity.Name,
			Confirmed: identity.Confirmed(),
		},
	}, nil
}

func (s *AuthService) generateAccessToken(identity *models.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity.ID.String(),
		"email": identity.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(identity *models.Identity) (string, error) {
	rawToken, tokenHash, err := generateOpaqueToken()
	if err != nil {
		return "", err
	}

	record := models.RefreshToken{
		ID:         uuid.New(),
		IdentityID: identity.ID,
		TokenHash:  tokenHash,
		ExpiresAt:  time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func generateOpaqueToken() (raw string, hash string, err error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	raw = base64.URLEncoding.EncodeToString(rawBytes)
	return raw, hashToken(raw), nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
