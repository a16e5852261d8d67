package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/SaborReal/restaurant-manager/internal/domain/reservation"
	"github.com/SaborReal/restaurant-manager/internal/httperr"
	"github.com/SaborReal/restaurant-manager/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	reservations []models.Reservation
	nextID       uint

	// marca se o caminho de disponibilidade chegou a ser consultado
	activeTimesQueried bool
}

func newFakeRepo(seed ...models.Reservation) *fakeRepo {
	r := &fakeRepo{nextID: 1}
	for _, res := range seed {
		res.ID = r.nextID
		r.nextID++
		r.reservations = append(r.reservations, res)
	}
	return r
}

func (r *fakeRepo) CreateReservation(_ context.Context, res *models.Reservation) error {
	res.ID = r.nextID
	r.nextID++
	r.reservations = append(r.reservations, *res)
	return nil
}

func (r *fakeRepo) ListActiveTimesByDate(_ context.Context, date string) ([]string, error) {
	r.activeTimesQueried = true

	var times []string
	for _, res := range r.reservations {
		if res.Date == date && domain.IsActive(domain.Status(res.Status)) {
			times = append(times, res.Time)
		}
	}
	return times, nil
}

func (r *fakeRepo) GetReservation(_ context.Context, id uint) (*models.Reservation, error) {
	for i := range r.reservations {
		if r.reservations[i].ID == id {
			res := r.reservations[i]
			return &res, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeRepo) ListByDate(_ context.Context, date string) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, res := range r.reservations {
		if res.Date == date {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListByMonth(_ context.Context, year int, month time.Month) ([]models.Reservation, error) {
	return r.reservations, nil
}

func (r *fakeRepo) ListByUser(_ context.Context, userID uint) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, res := range r.reservations {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateReservation(_ context.Context, res *models.Reservation) error {
	for i := range r.reservations {
		if r.reservations[i].ID == res.ID {
			r.reservations[i] = *res
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeRepo) DeleteReservation(_ context.Context, id uint) error {
	for i := range r.reservations {
		if r.reservations[i].ID == id {
			r.reservations = append(r.reservations[:i], r.reservations[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// HELPERS
// ======================================================

func validCreateInput() CreateReservationInput {
	return CreateReservationInput{
		UserID:       7,
		ContactName:  "João Pereira",
		ContactPhone: "11988887777",
		ContactEmail: "joao@example.com",
		PartySize:    2,
		Date:         "2024-06-01",
		Time:         "12:00",
	}
}

func seedReservation(date, hm, status string) models.Reservation {
	return models.Reservation{
		UserID:       1,
		ContactName:  "Ana Lima",
		ContactPhone: "11977776666",
		ContactEmail: "ana@example.com",
		PartySize:    4,
		Date:         date,
		Time:         hm,
		Status:       status,
	}
}

// ======================================================
// TESTS
// ======================================================

func TestCreateReservationSuccess(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateReservation(repo, nil, nil)

	res, err := uc.Execute(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	if res.Status != string(domain.StatusPending) {
		t.Errorf("Status = %q, want %q", res.Status, domain.StatusPending)
	}
	if res.ID == 0 {
		t.Error("reservation was not assigned an id")
	}
	if len(repo.reservations) != 1 {
		t.Errorf("repo holds %d reservations, want 1", len(repo.reservations))
	}
}

func TestCreateReservationConflict(t *testing.T) {
	repo := newFakeRepo(seedReservation("2024-06-01", "12:00", string(domain.StatusPending)))
	uc := NewCreateReservation(repo, nil, nil)

	in := validCreateInput()
	in.Time = "13:30" // 90 minutos depois

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_conflict") {
		t.Fatalf("Execute() = %v, want slot_conflict", err)
	}

	if len(repo.reservations) != 1 {
		t.Errorf("conflicting reservation was persisted anyway")
	}
}

func TestCreateReservationExactlyTwoHoursApart(t *testing.T) {
	repo := newFakeRepo(seedReservation("2024-06-01", "12:00", string(domain.StatusPending)))
	uc := NewCreateReservation(repo, nil, nil)

	in := validCreateInput()
	in.Time = "14:00" // exatamente 120 minutos: permitido

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("Execute() = %v, want nil", err)
	}
}

func TestCreateReservationIgnoresCancelled(t *testing.T) {
	repo := newFakeRepo(seedReservation("2024-06-01", "12:00", string(domain.StatusCancelled)))
	uc := NewCreateReservation(repo, nil, nil)

	in := validCreateInput()
	in.Time = "12:30"

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("cancelled reservation still blocks slot: %v", err)
	}
}

func TestCreateReservationIgnoresCompleted(t *testing.T) {
	repo := newFakeRepo(seedReservation("2024-06-01", "12:00", string(domain.StatusCompleted)))
	uc := NewCreateReservation(repo, nil, nil)

	in := validCreateInput()
	in.Time = "12:30"

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("completed reservation still blocks slot: %v", err)
	}
}

func TestCreateReservationOtherDateNeverConflicts(t *testing.T) {
	repo := newFakeRepo(seedReservation("2024-06-01", "19:00", string(domain.StatusConfirmed)))
	uc := NewCreateReservation(repo, nil, nil)

	in := validCreateInput()
	in.Date = "2024-06-02"
	in.Time = "07:30"

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("reservation on another date blocked the slot: %v", err)
	}
}

// Validação de campos roda antes de qualquer consulta à agenda.
func TestCreateReservationValidatesBeforeAvailability(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateReservation(repo, nil, nil)

	in := validCreateInput()
	in.PartySize = 36

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "invalid_party_size") {
		t.Fatalf("Execute() = %v, want invalid_party_size", err)
	}

	if repo.activeTimesQueried {
		t.Error("availability was consulted for an invalid request")
	}
}

func TestCreateReservationMissingFields(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateReservation(repo, nil, nil)

	in := validCreateInput()
	in.ContactEmail = ""

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "all_fields_required") {
		t.Fatalf("Execute() = %v, want all_fields_required", err)
	}
}
