package services

import (
	"errors"
	"fmt"

	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/dapurkita/backoffice/internal/models"
	"gorm.io/gorm"
)

var ErrSettingNotFound = errors.New("setting not found")

type SettingService struct {
	db *gorm.DB
}

func NewSettingService(db *gorm.DB) *SettingService {
	return &SettingService{db: db}
}

func (s *SettingService) List() ([]models.Setting, error) {
	var settings []models.Setting
	if err := s.db.Order("id ASC").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

func (s *SettingService) Create(req *dto.SettingRequest) (*models.Setting, error) {
	setting := models.Setting{
		Email:  req.Email,
		NoTelp: req.NoTelp,
	}
	if err := s.db.Create(&setting).Error; err != nil {
		return nil, fmt.Errorf("failed to create setting: %w", err)
	}
	return &setting, nil
}

func (s *SettingService) Update(id uint, req *dto.SettingRequest) (*models.Setting, error) {
	var setting models.Setting
	if err := s.db.First(&setting, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to load setting: %w", err)
	}

	setting.Email = req.Email
	setting.NoTelp = req.NoTelp
	if err := s.db.Save(&setting).Error; err != nil {
		return nil, fmt.Errorf("failed to update setting: %w", err)
	}
	return &setting, nil
}
