package reservation

import (
	"context"
	"sync"

	"github.com/SaborReal/restaurant-manager/internal/audit"
	"github.com/SaborReal/restaurant-manager/internal/cache"
	domain "github.com/SaborReal/restaurant-manager/internal/domain/reservation"
	"github.com/SaborReal/restaurant-manager/internal/httperr"
	"github.com/SaborReal/restaurant-manager/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	UserID uint

	ContactName  string
	ContactPhone string
	ContactEmail string

	PartySize int

	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

// dateLocks serializa o check-then-insert por data dentro do processo.
// Duas instâncias da API ainda podem furar a regra de 120 minutos entre
// si; fechar isso de vez exigiria uma exclusion constraint no banco.
type dateLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newDateLocks() *dateLocks {
	return &dateLocks{locks: make(map[string]*sync.Mutex)}
}

func (d *dateLocks) forDate(date string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()

	if l, ok := d.locks[date]; ok {
		return l
	}
	l := &sync.Mutex{}
	d.locks[date] = l
	return l
}

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.Availability
	locks *dateLocks
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	availCache *cache.Availability,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
		cache: availCache,
		locks: newDateLocks(),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1️⃣ Validação de campos (antes de olhar a agenda)
	// --------------------------------------------------
	if err := domain.ValidateBooking(domain.BookingInput{
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
		PartySize:    in.PartySize,
		Date:         in.Date,
		Time:         in.Time,
	}); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Check-then-insert serializado por data
	// --------------------------------------------------
	lock := uc.locks.forDate(in.Date)
	lock.Lock()
	defer lock.Unlock()

	activeTimes, err := uc.repo.ListActiveTimesByDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	ok, err := domain.IsSlotAvailable(in.Time, activeTimes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("slot_conflict")
	}

	// --------------------------------------------------
	// 3️⃣ Criação (status centralizado)
	// --------------------------------------------------
	res := &models.Reservation{
		UserID:       in.UserID,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
		PartySize:    in.PartySize,
		Date:         in.Date,
		Time:         in.Time,
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.Date)

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			UserID:   &in.UserID,
			Action:   "reservation_created",
			Entity:   "reservation",
			EntityID: &res.ID,
		})
	}

	return res, nil
}
