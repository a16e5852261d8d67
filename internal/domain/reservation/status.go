package reservation

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// InitialStatus define o status de toda reserva recém-criada.
func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsActive diz se a reserva conta para o cálculo de conflito.
// Reservas canceladas ou concluídas nunca bloqueiam horário.
func IsActive(s Status) bool {
	return s != StatusCancelled && s != StatusCompleted
}

// ActiveStatuses é o filtro usado pelo repositório ao buscar
// os horários ativos de uma data.
func ActiveStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}
