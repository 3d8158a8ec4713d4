package appointment

import (
	"context"

	domain "github.com/edsonbastos2/salon-agenda/internal/domain/appointment"
	"github.com/edsonbastos2/salon-agenda/internal/events"
	"github.com/edsonbastos2/salon-agenda/internal/models"
	"github.com/edsonbastos2/salon-agenda/internal/timezone"
)

// ======================================================
// USE CASE — confirmar / cancelar / concluir
// ======================================================

// ChangeStatus aplica a máquina de estados sobre o status
// persistido e grava com compare-and-swap: se outra transição
// chegou antes, nada é gravado e nenhum evento é emitido.
type ChangeStatus struct {
	repo       domain.Repository
	dispatcher *events.Dispatcher
}

func NewChangeStatus(
	repo domain.Repository,
	dispatcher *events.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		repo:       repo,
		dispatcher: dispatcher,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
	target domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	salon, err := uc.repo.GetSalonByID(ctx, ap.SalonID)
	if err != nil {
		return nil, err
	}

	prior := domain.Status(ap.Status)
	now := timezone.NowIn(salon.Timezone)

	if err := domain.Transition(actor, ap, target, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointmentStatus(ctx, ap, prior); err != nil {
		return nil, err
	}

	// exatamente um evento por transição efetivada
	uc.dispatcher.Dispatch(events.New(
		events.KindStatusChanged,
		ap.ID,
		ap.SalonID,
		ap.ClientID,
		string(prior),
		ap.Status,
		ap.StartTime,
	))

	return ap, nil
}
