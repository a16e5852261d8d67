package timezone

import "time"

// Fuso oficial do restaurante. Datas de reserva e "hoje" do prato
// do dia são sempre resolvidos nele.
const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today retorna a data de hoje no formato YYYY-MM-DD.
func Today() string {
	return Now().Format("2006-01-02")
}
