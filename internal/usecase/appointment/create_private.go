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

type CreatePrivateAppointmentInput struct {
	SalonID   uint
	ClientID  uint
	ServiceID uint

	// opcional: profissional escolhido pelo dono do salão
	ProfessionalID *uint

	Date string
	Time string

	DurationOverrideMin *int
	Notes               string
}

// ======================================================
// USE CASE — caminho do dono do salão (nasce confirmado,
// horário já combinado com o cliente fora do sistema)
// ======================================================

type CreatePrivateAppointment struct {
	repo       domain.Repository
	dispatcher *events.Dispatcher
}

func NewCreatePrivateAppointment(
	repo domain.Repository,
	dispatcher *events.Dispatcher,
) *CreatePrivateAppointment {
	return &CreatePrivateAppointment{
		repo:       repo,
		dispatcher: dispatcher,
	}
}

func (uc *CreatePrivateAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	in CreatePrivateAppointmentInput,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	if actor.Kind == domain.ActorClient ||
		(actor.Kind == domain.ActorSalonOwner && actor.SalonID != salon.ID) {
		return nil, httperr.ErrForbidden("not_salon_owner")
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

	if in.ProfessionalID != nil {
		if _, err := uc.repo.GetActiveProfessional(
			ctx,
			in.SalonID,
			*in.ProfessionalID,
		); err != nil {
			return nil, httperr.ErrBusiness("professional_not_found")
		}
	}

	durationMin, err := domain.ResolveDuration(svc, in.DurationOverrideMin)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientID:            in.ClientID,
		SalonID:             in.SalonID,
		ServiceID:           svc.ID,
		ProfessionalID:      in.ProfessionalID,
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
