package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	ContactName  string `gorm:"size:100;not null" json:"contact_name"`
	ContactPhone string `gorm:"size:20;not null" json:"contact_phone"`
	ContactEmail string `gorm:"size:100;not null" json:"contact_email"`

	PartySize int `json:"party_size"`

	Date string `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null" json:"time"`        // HH:MM

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
