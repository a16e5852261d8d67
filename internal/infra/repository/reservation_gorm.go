package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/SaborReal/restaurant-manager/internal/domain/reservation"
	"github.com/SaborReal/restaurant-manager/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Reservation (create / conflict)
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ReservationGormRepository) ListActiveTimesByDate(
	ctx context.Context,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"date = ? AND status IN ?",
			date,
			domain.ActiveStatuses(),
		).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// --------------------------------------------------
// Reservation (read)
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ReservationGormRepository) ListByDate(
	ctx context.Context,
	date string,
) ([]models.Reservation, error) {

	var list []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}

	return list, nil
}

func (r *ReservationGormRepository) ListByMonth(
	ctx context.Context,
	year int,
	month time.Month,
) ([]models.Reservation, error) {

	prefix := fmt.Sprintf("%04d-%02d-%%", year, int(month))

	var list []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("date LIKE ?", prefix).
		Order("date ASC, time ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}

	return list, nil
}

func (r *ReservationGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Reservation, error) {

	var list []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}

	return list, nil
}

// --------------------------------------------------
// Reservation (state change)
// --------------------------------------------------

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Reservation{}, id).Error
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
