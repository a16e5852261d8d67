package reservation

import (
	"context"

	"github.com/SaborReal/restaurant-manager/internal/audit"
	"github.com/SaborReal/restaurant-manager/internal/cache"
	domain "github.com/SaborReal/restaurant-manager/internal/domain/reservation"
	"github.com/SaborReal/restaurant-manager/internal/httperr"
)

type DeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
}

func NewDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	availCache *cache.Availability,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: audit,
		cache: availCache,
	}
}

func (uc *DeleteReservation) Execute(
	ctx context.Context,
	adminID uint,
	reservationID uint,
) error {

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return httperr.ErrBusiness("reservation_not_found")
	}

	if err := uc.repo.DeleteReservation(ctx, res.ID); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, res.Date)

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &adminID,
			Action:   "reservation_deleted",
			Entity:   "reservation",
			EntityID: &res.ID,
		})
	}

	return nil
}
