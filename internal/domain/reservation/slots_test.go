package reservation

import (
	"reflect"
	"testing"
)

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"07:30", 450, false},
		{"12:00", 720, false},
		{"19:00", 1140, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"1200", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := MinutesOfDay(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("MinutesOfDay(%q) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("MinutesOfDay(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MinutesOfDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSlotGrid(t *testing.T) {
	grid := SlotGrid()

	if len(grid) != 24 {
		t.Fatalf("SlotGrid() has %d slots, want 24", len(grid))
	}

	if grid[0] != "07:30" {
		t.Errorf("SlotGrid()[0] = %q, want %q", grid[0], "07:30")
	}
	if grid[len(grid)-1] != "19:00" {
		t.Errorf("SlotGrid() last = %q, want %q", grid[len(grid)-1], "19:00")
	}

	// ordem cronológica, sem repetição
	prev := -1
	for _, slot := range grid {
		m, err := MinutesOfDay(slot)
		if err != nil {
			t.Fatalf("grid slot %q is malformed: %v", slot, err)
		}
		if m <= prev {
			t.Errorf("grid slot %q out of order (prev %d, got %d)", slot, prev, m)
		}
		prev = m
	}
}

func TestIsSlotAvailable(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		active    []string
		want      bool
	}{
		{"empty day", "12:00", nil, true},
		{"same time", "12:00", []string{"12:00"}, false},
		{"90 min after", "13:30", []string{"12:00"}, false},
		{"90 min before", "10:30", []string{"12:00"}, false},
		{"119 min after", "13:59", []string{"12:00"}, false},
		{"exactly 120 min after", "14:00", []string{"12:00"}, true},
		{"exactly 120 min before", "10:00", []string{"12:00"}, true},
		{"between two far reservations", "11:30", []string{"09:00", "15:00"}, true},
		{"blocked by second of two", "14:00", []string{"09:00", "15:00"}, false},
		{"malformed active time ignored", "12:00", []string{"xx:yy"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsSlotAvailable(tt.candidate, tt.active)
			if err != nil {
				t.Fatalf("IsSlotAvailable(%q, %v) unexpected error: %v", tt.candidate, tt.active, err)
			}
			if got != tt.want {
				t.Errorf("IsSlotAvailable(%q, %v) = %v, want %v", tt.candidate, tt.active, got, tt.want)
			}
		})
	}
}

func TestIsSlotAvailableMalformedCandidate(t *testing.T) {
	if _, err := IsSlotAvailable("25:00", nil); err == nil {
		t.Error("IsSlotAvailable with malformed candidate expected error, got nil")
	}
}

// A regra é simétrica: se a bloqueia b, b bloqueia a.
func TestConflictSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"12:00", "13:30"},
		{"07:30", "09:00"},
		{"18:00", "19:00"},
		{"10:00", "11:59"},
	}

	for _, p := range pairs {
		ab, err := IsSlotAvailable(p[0], []string{p[1]})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ba, err := IsSlotAvailable(p[1], []string{p[0]})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ab != ba {
			t.Errorf("conflict rule not symmetric for %q / %q: %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestComputeAvailabilityEmptyDay(t *testing.T) {
	available, blocked := ComputeAvailability(nil)

	if len(available) != 24 {
		t.Errorf("empty day: %d available slots, want 24", len(available))
	}
	if len(blocked) != 0 {
		t.Errorf("empty day: %d blocked slots, want 0", len(blocked))
	}
}

// Reserva às 07:30 bloqueia 07:30 até 09:00 inclusive; 09:30 em diante livre.
func TestComputeAvailabilityEarlyReservation(t *testing.T) {
	available, blocked := ComputeAvailability([]string{"07:30"})

	wantBlocked := []string{"07:30", "08:00", "08:30", "09:00"}
	if !reflect.DeepEqual(blocked, wantBlocked) {
		t.Errorf("blocked = %v, want %v", blocked, wantBlocked)
	}

	if len(available) != 20 {
		t.Fatalf("%d available slots, want 20", len(available))
	}
	if available[0] != "09:30" {
		t.Errorf("first available = %q, want %q", available[0], "09:30")
	}
}

// available + blocked sempre particionam a grade completa, na ordem dela.
func TestComputeAvailabilityPartition(t *testing.T) {
	cases := [][]string{
		nil,
		{"07:30"},
		{"12:00"},
		{"19:00"},
		{"09:00", "15:00"},
		{"07:30", "10:00", "12:30", "15:00", "17:30"},
	}

	for _, active := range cases {
		available, blocked := ComputeAvailability(active)

		if len(available)+len(blocked) != 24 {
			t.Errorf("active=%v: partition has %d slots, want 24", active, len(available)+len(blocked))
		}

		seen := make(map[string]bool)
		for _, s := range available {
			seen[s] = true
		}
		for _, s := range blocked {
			if seen[s] {
				t.Errorf("active=%v: slot %q in both lists", active, s)
			}
			seen[s] = true
		}

		for _, slot := range SlotGrid() {
			if !seen[slot] {
				t.Errorf("active=%v: slot %q missing from partition", active, slot)
			}
		}
	}
}

func TestComputeAvailabilityIdempotent(t *testing.T) {
	active := []string{"09:00", "15:00"}

	a1, b1 := ComputeAvailability(active)
	a2, b2 := ComputeAvailability(active)

	if !reflect.DeepEqual(a1, a2) || !reflect.DeepEqual(b1, b2) {
		t.Error("ComputeAvailability is not deterministic for equal input")
	}
}

func TestComputeAvailabilityConsistentWithIsSlotAvailable(t *testing.T) {
	active := []string{"08:00", "13:00", "18:30"}

	available, blocked := ComputeAvailability(active)

	for _, slot := range available {
		ok, _ := IsSlotAvailable(slot, active)
		if !ok {
			t.Errorf("slot %q listed as available but IsSlotAvailable says conflict", slot)
		}
	}
	for _, slot := range blocked {
		ok, _ := IsSlotAvailable(slot, active)
		if ok {
			t.Errorf("slot %q listed as blocked but IsSlotAvailable says free", slot)
		}
	}
}
