package reservation

import (
	"context"
	"sync"
	"testing"

	"github.com/SaborReal/restaurant-manager/internal/httperr"
)

// Duas reservas simultâneas a menos de 120 minutos na mesma data:
// o lock por data garante que exatamente uma passa.
func TestCreateReservationSerializedPerDate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateReservation(repo, nil, nil)

	times := []string{"12:00", "13:00"}
	results := make([]error, len(times))

	var wg sync.WaitGroup
	for i, hm := range times {
		wg.Add(1)
		go func(i int, hm string) {
			defer wg.Done()

			in := validCreateInput()
			in.Time = hm
			_, results[i] = uc.Execute(context.Background(), in)
		}(i, hm)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case httperr.IsBusiness(err, "slot_conflict"):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if successes != 1 || conflicts != 1 {
		t.Errorf("got %d successes and %d conflicts, want 1 and 1", successes, conflicts)
	}

	if len(repo.reservations) != 1 {
		t.Errorf("repo holds %d reservations, want 1", len(repo.reservations))
	}
}
