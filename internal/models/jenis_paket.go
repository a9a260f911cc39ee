package models

import "time"

// JenisPaket is a package type (category); it has many Makanan.
type JenisPaket struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	NamaPaket   string    `gorm:"size:255;not null" json:"namaPaket"`
	NamaPaketEn *string   `gorm:"size:255" json:"namaPaketEn"`
	Makanan     []Makanan `gorm:"foreignKey:JenisPaketID" json:"makanan,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
