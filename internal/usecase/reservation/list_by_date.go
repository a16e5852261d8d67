package reservation

import (
	"context"

	domain "github.com/SaborReal/restaurant-manager/internal/domain/reservation"
	"github.com/SaborReal/restaurant-manager/internal/dto"
)

type ListReservationsByDate struct {
	repo domain.Repository
}

func NewListReservationsByDate(
	repo domain.Repository,
) *ListReservationsByDate {
	return &ListReservationsByDate{
		repo: repo,
	}
}

func (uc *ListReservationsByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.ReservationListDTO, error) {

	reservations, err := uc.repo.ListByDate(ctx, date)
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
