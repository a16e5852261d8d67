package reservation

import (
	"context"

	domain "github.com/SaborReal/restaurant-manager/internal/domain/reservation"
	"github.com/SaborReal/restaurant-manager/internal/dto"
)

type ListMyReservations struct {
	repo domain.Repository
}

func NewListMyReservations(
	repo domain.Repository,
) *ListMyReservations {
	return &ListMyReservations{
		repo: repo,
	}
}

func (uc *ListMyReservations) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.ReservationListDTO, error) {

	reservations, err := uc.repo.ListByUser(ctx, userID)
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
