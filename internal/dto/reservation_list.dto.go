package dto

import "time"

type ReservationListDTO struct {
	ID           uint      `json:"id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	PartySize    int       `json:"party_size"`
	Status       string    `json:"status"`
	ContactName  string    `json:"contact_name"`
	ContactPhone string    `json:"contact_phone"`
	CreatedAt    time.Time `json:"created_at"`
}
