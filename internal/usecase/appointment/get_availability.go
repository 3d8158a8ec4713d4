package appointment

import (
	"context"
	"time"

	domain "github.com/edsonbastos2/salon-agenda/internal/domain/appointment"
	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/timezone"
)

type AvailabilityInput struct {
	SalonID        uint
	ServiceID      uint
	ProfessionalID *uint
	Date           string // YYYY-MM-DD
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute lista os slots fixos ainda livres para o dia pedido.
// Horário livre digitado pelo cliente é validado só na criação.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.TimeSlot, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetActiveService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_service")
	}

	loc := timezone.Location(salon.Timezone)

	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	booked, err := uc.repo.ListBookedIntervals(
		ctx,
		in.SalonID,
		in.ProfessionalID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(salon.Timezone)
	slotDuration := time.Duration(svc.DurationMin) * time.Minute

	slots := make([]domain.TimeSlot, 0, len(domain.CandidateTimes))

	for _, hm := range domain.CandidateTimes {
		t, _ := time.Parse("15:04", hm)
		slotStart := time.Date(
			day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
		slotEnd := slotStart.Add(slotDuration)

		if slotStart.Before(now) {
			continue
		}

		conflict := false
		for _, ap := range booked {
			if domain.Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots, nil
}
