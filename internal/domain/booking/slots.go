package booking

// Universo fixo de horários do dia. O salão tem uma única cadeira,
// então cada slot comporta no máximo um agendamento.
var Slots = []string{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00",
	"17:00", "18:00",
}

// AvailableSlots devolve o universo menos os horários já ocupados,
// preservando a ordem crescente canônica.
func AvailableSlots(booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	out := make([]string, 0, len(Slots))
	for _, s := range Slots {
		if _, ok := taken[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
