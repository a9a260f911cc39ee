package services

import (
	"errors"
	"fmt"

	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/dapurkita/backoffice/internal/models"
	"gorm.io/gorm"
)

var (
	ErrJenisPaketNotFound = errors.New("jenis paket not found")
	ErrJenisPaketInUse    = errors.New("cannot delete jenis paket that has associated makanan")
)

type JenisPaketService struct {
	db *gorm.DB
}

func NewJenisPaketService(db *gorm.DB) *JenisPaketService {
	return &JenisPaketService{db: db}
}

// List returns all package types ordered by name, with makanan counts.
func (s *JenisPaketService) List() ([]dto.JenisPaketResponse, error) {
	var pakets []models.JenisPaket
	if err := s.db.Order("nama_paket ASC").Find(&pakets).Error; err != nil {
		return nil, fmt.Errorf("failed to list jenis paket: %w", err)
	}

	out := make([]dto.JenisPaketResponse, 0, len(pakets))
	for _, p := range pakets {
		var count int64
		if err := s.db.Model(&models.Makanan{}).
			Where("jenis_paket_id = ?", p.ID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count makanan: %w", err)
		}
		out = append(out, dto.JenisPaketResponse{
			ID:           p.ID,
			NamaPaket:    p.NamaPaket,
			NamaPaketEn:  p.NamaPaketEn,
			MakananCount: count,
			CreatedAt:    p.CreatedAt,
		})
	}
	return out, nil
}

func (s *JenisPaketService) Get(id uint) (*models.JenisPaket, error) {
	var paket models.JenisPaket
	if err := s.db.Preload("Makanan").First(&paket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJenisPaketNotFound
		}
		return nil, fmt.Errorf("failed to load jenis paket: %w", err)
	}
	return &paket, nil
}

func (s *JenisPaketService) Create(req *dto.JenisPaketRequest) (*models.JenisPaket, error) {
	paket := models.JenisPaket{
		NamaPaket:   req.NamaPaket,
		NamaPaketEn: req.NamaPaketEn,
	}
	if err := s.db.Create(&paket).Error; err != nil {
		return nil, fmt.Errorf("failed to create jenis paket: %w", err)
	}
	return &paket, nil
}

func (s *JenisPaketService) Update(id uint, req *dto.JenisPaketRequest) (*models.JenisPaket, error) {
	var paket models.JenisPaket
	if err := s.db.First(&paket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJenisPaketNotFound
		}
		return nil, fmt.Errorf("failed to load jenis paket: %w", err)
	}

	paket.NamaPaket = req.NamaPaket
	paket.NamaPaketEn = req.NamaPaketEn
	if err := s.db.Save(&paket).Error; err != nil {
		return nil, fmt.Errorf("failed to update jenis paket: %w", err)
	}
	return &paket, nil
}

// Delete removes a package type. A package type with any referencing
// makanan is rejected; those rows and their images must be removed first.
func (s *JenisPaketService) Delete(id uint) error {
	var paket models.JenisPaket
	if err := s.db.First(&paket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJenisPaketNotFound
		}
		return fmt.Errorf("failed to load jenis paket: %w", err)
	}

	var count int64
	if err := s.db.Model(&models.Makanan{}).
		Where("jenis_paket_id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count makanan: %w", err)
	}
	if count > 0 {
		return ErrJenisPaketInUse
	}

	if err := s.db.Delete(&paket).Error; err != nil {
		return fmt.Errorf("failed to delete jenis paket: %w", err)
	}
	return nil
}
