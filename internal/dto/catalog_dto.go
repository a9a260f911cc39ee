package dto

import (
	"time"

	"github.com/dapurkita/backoffice/internal/models"
)

type JenisPaketRequest struct {
	NamaPaket   string  `json:"namaPaket"`
	NamaPaketEn *string `json:"namaPaketEn"`
}

// JenisPaketResponse carries the package type plus its makanan count for
// list views.
type JenisPaketResponse struct {
	ID           uint      `json:"id"`
	NamaPaket    string    `json:"namaPaket"`
	NamaPaketEn  *string   `json:"namaPaketEn"`
	MakananCount int64     `json:"makananCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type MakananRequest struct {
	NamaMakanan  string   `json:"namaMakanan"`
	Deskripsi    string   `json:"deskripsi"`
	DeskripsiEn  *string  `json:"deskripsiEn"`
	Foto         []string `json:"foto"`
	Harga        int      `json:"harga"`
	JenisPaketID uint     `json:"jenisPaketId"`
}

// MakananResponse is a Makanan with foto decoded into a URL list.
type MakananResponse struct {
	ID           uint               `json:"id"`
	NamaMakanan  string             `json:"namaMakanan"`
	Deskripsi    string             `json:"deskripsi"`
	DeskripsiEn  *string            `json:"deskripsiEn"`
	Foto         []string           `json:"foto"`
	Harga        int                `json:"harga"`
	JenisPaketID uint               `json:"jenisPaketId"`
	JenisPaket   *models.JenisPaket `json:"jenisPaket,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

func NewMakananResponse(m *models.Makanan) MakananResponse {
	return MakananResponse{
		ID:           m.ID,
		NamaMakanan:  m.NamaMakanan,
		Deskripsi:    m.Deskripsi,
		DeskripsiEn:  m.DeskripsiEn,
		Foto:         m.FotoURLs(),
		Harga:        m.Harga,
		JenisPaketID: m.JenisPaketID,
		JenisPaket:   m.JenisPaket,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type SettingRequest struct {
	Email  string `json:"email"`
	NoTelp string `json:"noTelp"`
}
