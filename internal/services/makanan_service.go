package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dapurkita/backoffice/internal/dto"
	"github.com/dapurkita/backoffice/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMakananNotFound = errors.New("makanan not found")
	ErrInvalidFoto     = errors.New("foto must be a non-empty list of http(s) URLs")
)

type MakananService struct {
	db      *gorm.DB
	cleanup *CleanupService
}

func NewMakananService(db *gorm.DB, cleanup *CleanupService) *MakananService {
	return &MakananService{db: db, cleanup: cleanup}
}

func (s *MakananService) List() ([]dto.MakananResponse, error) {
	var rows []models.Makanan
	if err := s.db.Preload("JenisPaket").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list makanan: %w", err)
	}

	out := make([]dto.MakananResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewMakananResponse(&rows[i]))
	}
	return out, nil
}

func (s *MakananService) Get(id uint) (*dto.MakananResponse, error) {
	var row models.Makanan
	if err := s.db.Preload("JenisPaket").First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMakananNotFound
		}
		return nil, fmt.Errorf("failed to load makanan: %w", err)
	}
	resp := dto.NewMakananResponse(&row)
	return &resp, nil
}

func (s *MakananService) Create(req *dto.MakananRequest) (*dto.MakananResponse, error) {
	if err := validateFoto(req.Foto); err != nil {
		return nil, err
	}
	if err := s.ensureJenisPaket(req.JenisPaketID); err != nil {
		return nil, err
	}

	row := models.Makanan{
		NamaMakanan:  req.NamaMakanan,
		Deskripsi:    req.Deskripsi,
		DeskripsiEn:  req.DeskripsiEn,
		Foto:         models.SerializeFotoURLs(req.Foto),
		Harga:        req.Harga,
		JenisPaketID: req.JenisPaketID,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to create makanan: %w", err)
	}

	return s.Get(row.ID)
}

func (s *MakananService) Update(id uint, req *dto.MakananRequest) (*dto.MakananResponse, error) {
	if err := validateFoto(req.Foto); err != nil {
		return nil, err
	}

	var row models.Makanan
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMakananNotFound
		}
		return nil, fmt.Errorf("failed to load makanan: %w", err)
	}
	if err := s.ensureJenisPaket(req.JenisPaketID); err != nil {
		return nil, err
	}

	row.NamaMakanan = req.NamaMakanan
	row.Deskripsi = req.Deskripsi
	row.DeskripsiEn = req.DeskripsiEn
	row.Foto = models.SerializeFotoURLs(req.Foto)
	row.Harga = req.Harga
	row.JenisPaketID = req.JenisPaketID
	if err := s.db.Save(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to update makanan: %w", err)
	}

	return s.Get(row.ID)
}

// Delete removes the row and then fires best-effort deletion of its images.
// The row delete is the authoritative action; blob failures are logged and
// left for the reconciliation job.
func (s *MakananService) Delete(ctx context.Context, id uint) error {
	var row models.Makanan
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMakananNotFound
		}
		return fmt.Errorf("failed to load makanan: %w", err)
	}

	if err := s.db.Delete(&row).Error; err != nil {
		return fmt.Errorf("failed to delete makanan: %w", err)
	}

	s.cleanup.RemoveImageURLs(ctx, row.FotoURLs())
	return nil
}

func (s *MakananService) ensureJenisPaket(id uint) error {
	var paket models.JenisPaket
	if err := s.db.First(&paket, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJenisPaketNotFound
		}
		return fmt.Errorf("failed to load jenis paket: %w", err)
	}
	return nil
}

func validateFoto(urls []string) error {
	if len(urls) == 0 {
		return ErrInvalidFoto
	}
	for _, u := range urls {
		if !strings.HasPrefix(u, "https://") && !strings.HasPrefix(u, "http://") {
			return ErrInvalidFoto
		}
	}
	return nil
}
