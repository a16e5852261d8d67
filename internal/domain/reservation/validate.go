package reservation

import (
	"time"

	"github.com/SaborReal/restaurant-manager/internal/httperr"
)

// ===============================
// Validação de campos
// ===============================

const (
	MinPartySize = 1
	MaxPartySize = 35
)

type BookingInput struct {
	ContactName  string
	ContactPhone string
	ContactEmail string
	PartySize    int
	Date         string // YYYY-MM-DD
	Time         string // HH:MM
}

// ValidateBooking roda antes de qualquer consulta de disponibilidade.
// Campo ausente gera uma única rejeição genérica; os demais erros
// apontam o campo inválido.
func ValidateBooking(in BookingInput) error {
	if in.ContactName == "" ||
		in.ContactPhone == "" ||
		in.ContactEmail == "" ||
		in.PartySize == 0 ||
		in.Date == "" ||
		in.Time == "" {
		return httperr.ErrBusiness("all_fields_required")
	}

	if in.PartySize < MinPartySize || in.PartySize > MaxPartySize {
		return httperr.ErrBusiness("invalid_party_size")
	}

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}

	m, err := MinutesOfDay(in.Time)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}

	// janela 07:30–19:00 inclusive
	if m < OpenMinutes || m > CloseMinutes {
		return httperr.ErrBusiness("invalid_time")
	}

	return nil
}
