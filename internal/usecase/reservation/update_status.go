package reservation

import (
	"context"

	"github.com/SaborReal/restaurant-manager/internal/audit"
	"github.com/SaborReal/restaurant-manager/internal/cache"
	domain "github.com/SaborReal/restaurant-manager/internal/domain/reservation"
	"github.com/SaborReal/restaurant-manager/internal/httperr"
	"github.com/SaborReal/restaurant-manager/internal/models"
	"github.com/SaborReal/restaurant-manager/internal/timezone"
)

type UpdateReservationStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewUpdateReservationStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	availCache *cache.Availability,
) *UpdateReservationStatus {
	return &UpdateReservationStatus{
		repo:  repo,
		audit: audit,
		cache: availCache,
	}
}

// Execute aceita qualquer transição dentro do conjunto de status — o
// painel não impõe grafo de transições, só pertencimento ao conjunto.
func (uc *UpdateReservationStatus) Execute(
	ctx context.Context,
	adminID uint,
	reservationID uint,
	newStatus domain.Status,
) (*models.Reservation, error) {

	if !domain.IsValidStatus(newStatus) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	res.Status = string(newStatus)

	now := timezone.Now()
	switch newStatus {
	case domain.StatusCancelled:
		res.CancelledAt = &now
	case domain.StatusCompleted:
		res.CompletedAt = &now
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, res.Date)

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &adminID,
			Action:   "reservation_status_updated",
			Entity:   "reservation",
			EntityID: &res.ID,
			Metadata: map[string]string{"status": string(newStatus)},
		})
	}

	return res, nil
}
