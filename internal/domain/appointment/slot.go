package appointment

import (
	"time"

	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

// ===============================
// Slot — (data, hora, duração) proposto pelo cliente
// ===============================

// Horários fixos oferecidos na tela de agendamento. Horário livre
// (qualquer HH:MM válido) também é aceito.
var CandidateTimes = []string{
	"09:00", "10:00", "11:00",
	"13:00", "14:00", "15:00",
	"16:00", "17:00", "18:00",
}

func IsCandidateTime(hm string) bool {
	for _, t := range CandidateTimes {
		if t == hm {
			return true
		}
	}
	return false
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ResolveStart combina data e hora no timezone do salão.
// Rejeita hora ausente, formato inválido e datas no passado.
func ResolveStart(date, hm string, loc *time.Location, now time.Time) (time.Time, error) {
	if hm == "" {
		return time.Time{}, httperr.ErrBusiness("missing_time")
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hm, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	if start.Before(now) {
		return time.Time{}, httperr.ErrBusiness("past_date")
	}

	return start, nil
}

// ResolveDuration: override do cliente quando informado, senão a
// duração nominal do serviço
func ResolveDuration(svc *models.Service, overrideMin *int) (int, error) {
	if overrideMin != nil {
		if *overrideMin <= 0 {
			return 0, httperr.ErrBusiness("invalid_duration")
		}
		return *overrideMin, nil
	}

	if svc.DurationMin <= 0 {
		return 0, httperr.ErrBusiness("invalid_service")
	}
	return svc.DurationMin, nil
}

// Overlaps: intervalos [start, end) se sobrepõem
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
