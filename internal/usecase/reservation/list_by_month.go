package reservation

import (
	"context"
	"time"

	domain "github.com/SaborReal/restaurant-manager/internal/domain/reservation"
	"github.com/SaborReal/restaurant-manager/internal/dto"
)

type ListReservationsByMonth struct {
	repo domain.Repository
}

func NewListReservationsByMonth(
	repo domain.Repository,
) *ListReservationsByMonth {
	return &ListReservationsByMonth{
		repo: repo,
	}
}

// Execute alimenta a visão de calendário do painel.
func (uc *ListReservationsByMonth) Execute(
	ctx context.Context,
	year int,
	month time.Month,
) ([]dto.ReservationListDTO, error) {

	reservations, err := uc.repo.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, dto.ReservationListDTO{
			ID:           res.ID,
			Date:         res.Date,
			Time:         res.Time,
			PartySize:    res.PartySize,
			Status:       res.Status,
			ContactName:  res.ContactName,
			ContactPhone: res.ContactPhone,
			CreatedAt:    res.CreatedAt,
		})
	}

	return out, nil
}
