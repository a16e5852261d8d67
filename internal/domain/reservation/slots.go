package reservation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SaborReal/restaurant-manager/internal/httperr"
)

// ===============================
// Janela de atendimento
// ===============================

const (
	// 07:30 e 19:00 em minutos desde a meia-noite
	OpenMinutes  = 7*60 + 30
	CloseMinutes = 19 * 60

	SlotIntervalMinutes = 30

	// distância mínima entre duas reservas ativas no mesmo dia
	MinGapMinutes = 120
)

// MinutesOfDay converte "HH:MM" em minutos desde a meia-noite.
func MinutesOfDay(hm string) (int, error) {
	parts := strings.Split(hm, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	return h*60 + m, nil
}

// SlotGrid retorna os 24 horários fixos de meia em meia hora,
// de 07:30 até 19:00 inclusive, em ordem cronológica.
func SlotGrid() []string {
	var grid []string
	for m := OpenMinutes; m <= CloseMinutes; m += SlotIntervalMinutes {
		grid = append(grid, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return grid
}

// IsSlotAvailable decide se um horário candidato conflita com as reservas
// ativas do mesmo dia. Conflito = diferença absoluta menor que 120 minutos;
// exatamente 120 minutos é permitido. Horários ativos malformados (não
// deveriam existir no banco) são ignorados.
func IsSlotAvailable(candidate string, activeTimes []string) (bool, error) {
	cm, err := MinutesOfDay(candidate)
	if err != nil {
		return false, httperr.ErrBusiness("invalid_time")
	}

	for _, t := range activeTimes {
		tm, err := MinutesOfDay(t)
		if err != nil {
			continue
		}

		diff := cm - tm
		if diff < 0 {
			diff = -diff
		}
		if diff < MinGapMinutes {
			return false, nil
		}
	}

	return true, nil
}

// ComputeAvailability particiona a grade fixa de horários em livres e
// bloqueados, aplicando a mesma regra de 120 minutos slot a slot.
// Função pura: mesma entrada, mesma saída.
func ComputeAvailability(activeTimes []string) (available []string, blocked []string) {
	available = make([]string, 0, 24)
	blocked = make([]string, 0)

	for _, slot := range SlotGrid() {
		ok, err := IsSlotAvailable(slot, activeTimes)
		if err != nil {
			// a grade só contém horários válidos
			continue
		}

		if ok {
			available = append(available, slot)
		} else {
			blocked = append(blocked, slot)
		}
	}

	return available, blocked
}
