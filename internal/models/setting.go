package models

import "time"

// Setting holds the contact details shown on the public site.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	NoTelp    string    `gorm:"size:50;not null" json:"noTelp"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
