package appointment

import (
	"context"
	"time"

	domain "github.com/edsonbastos2/salon-agenda/internal/domain/appointment"
	"github.com/edsonbastos2/salon-agenda/internal/events"
	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/models"
	"github.com/edsonbastos2/salon-agenda/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientID  uint
	SalonID   uint
	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM — slot fixo ou horário livre

	DurationOverrideMin *int
	Notes               string
}

// ======================================================
// USE CASE — caminho do cliente (nasce pendente)
// ======================================================

type BookAppointment struct {
	repo       domain.Repository
	dispatcher *events.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	dispatcher *events.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:       repo,
		dispatcher: dispatcher,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}
	if !salon.Active {
		return nil, httperr.ErrBusiness("salon_inactive")
	}

	now := timezone.NowIn(salon.Timezone)

	start, err := domain.ResolveStart(
		in.Date,
		in.Time,
		timezone.Location(salon.Timezone),
		now,
	)
	if err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetActiveService(ctx, in.SalonID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_service")
	}

	durationMin, err := domain.ResolveDuration(svc, in.DurationOverrideMin)
	if err != nil {
		return nil, err
	}

	actor := domain.ClientActor(in.ClientID)

	ap := &models.Appointment{
		ClientID:            in.ClientID,
		SalonID:             in.SalonID,
		ServiceID:           svc.ID,
		StartTime:           start,
		EndTime:             start.Add(time.Duration(durationMin) * time.Minute),
		DurationOverrideMin: in.DurationOverrideMin,
		Status:              string(domain.InitialStatus(actor)),
		Notes:               in.Notes,
	}

	if err := uc.repo.CreateAppointmentIfSlotFree(ctx, ap); err != nil {
		return nil, err
	}

	uc.dispatcher.Dispatch(events.New(
		events.KindAppointmentCreated,
		ap.ID,
		ap.SalonID,
		ap.ClientID,
		"",
		ap.Status,
		ap.StartTime,
	))

	return ap, nil
}
