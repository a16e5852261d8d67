package reservation

import (
	"context"
	"time"

	"github.com/SaborReal/restaurant-manager/internal/models"
)

type Repository interface {
	// -------- Reservation (create / conflict) --------
	CreateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	// ListActiveTimesByDate retorna apenas os horários (HH:MM) das
	// reservas da data cujo status ainda bloqueia a agenda.
	ListActiveTimesByDate(
		ctx context.Context,
		date string,
	) ([]string, error)

	// -------- Reservation (read) --------
	GetReservation(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	ListByDate(
		ctx context.Context,
		date string,
	) ([]models.Reservation, error)

	ListByMonth(
		ctx context.Context,
		year int,
		month time.Month,
	) ([]models.Reservation, error)

	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Reservation, error)

	// -------- Reservation (state change) --------
	UpdateReservation(
		ctx context.Context,
		r *models.Reservation,
	) error

	DeleteReservation(
		ctx context.Context,
		id uint,
	) error
}
