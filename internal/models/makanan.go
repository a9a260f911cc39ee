package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Makanan is a food item. Foto is a JSON-serialized list of image URLs
// stored as text; legacy rows may hold a single bare URL instead of a
// list, so all readers must go through ParseFotoURLs.
type Makanan struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	NamaMakanan  string      `gorm:"size:255;not null" json:"namaMakanan"`
	Deskripsi    string      `gorm:"type:text;not null" json:"deskripsi"`
	DeskripsiEn  *string     `gorm:"type:text" json:"deskripsiEn"`
	Foto         string      `gorm:"type:text;not null" json:"-"`
	Harga        int         `gorm:"not null" json:"harga"`
	JenisPaketID uint        `gorm:"not null;index" json:"jenisPaketId"`
	JenisPaket   *JenisPaket `gorm:"foreignKey:JenisPaketID" json:"jenisPaket,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// FotoURLs parses the stored foto value through ParseFotoURLs.
func (m *Makanan) FotoURLs() []string {
	return ParseFotoURLs(m.Foto)
}

// ParseFotoURLs decodes a stored foto value into a list of URLs. The value
// is normally a JSON array of strings; legacy rows hold a single bare URL.
// Empty or unparseable values yield an empty list, never an error.
func ParseFotoURLs(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err == nil {
		out := make([]string, 0, len(urls))
		for _, u := range urls {
			if u != "" {
				out = append(out, u)
			}
		}
		return out
	}

	// Legacy shape: the column holds one bare URL string.
	return []string{raw}
}

// SerializeFotoURLs encodes a URL list into the stored foto shape.
func SerializeFotoURLs(urls []string) string {
	if urls == nil {
		urls = []string{}
	}
	b, _ := json.Marshal(urls)
	return string(b)
}
