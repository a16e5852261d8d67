package models

import "time"

// Prato do dia: uma imagem publicada pelo admin por data.
type DailyLunch struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date        string `gorm:"size:10;uniqueIndex;not null" json:"date"` // YYYY-MM-DD
	ImageURL    string `gorm:"size:255;not null" json:"image_url"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
