package reservation

import (
	"context"

	"github.com/SaborReal/restaurant-manager/internal/cache"
	domain "github.com/SaborReal/restaurant-manager/internal/domain/reservation"
)

type AvailabilityOutput struct {
	Date      string   `json:"date"`
	Available []string `json:"available_slots"`
	Blocked   []string `json:"blocked_slots"`
}

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.Availability
}

func NewGetAvailability(
	repo domain.Repository,
	availCache *cache.Availability,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: availCache,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) (*AvailabilityOutput, error) {

	if entry, ok := uc.cache.Get(ctx, date); ok {
		return &AvailabilityOutput{
			Date:      date,
			Available: entry.Available,
			Blocked:   entry.Blocked,
		}, nil
	}

	activeTimes, err := uc.repo.ListActiveTimesByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	available, blocked := domain.ComputeAvailability(activeTimes)

	uc.cache.Set(ctx, date, cache.AvailabilityEntry{
		Available: available,
		Blocked:   blocked,
	})

	return &AvailabilityOutput{
		Date:      date,
		Available: available,
		Blocked:   blocked,
	}, nil
}
