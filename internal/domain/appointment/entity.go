package appointment

import (
	"time"

	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// InitialStatus: agendamento criado pelo cliente nasce pendente;
// criado pelo dono do salão nasce confirmado (combinado fora do sistema)
func InitialStatus(actor Actor) Status {
	if actor.Kind == ActorClient {
		return StatusPending
	}
	return StatusConfirmed
}

// Transition aplica uma mudança de status validando a tabela de
// transições e as permissões do actor. Função pura: não persiste.
func Transition(actor Actor, ap *models.Appointment, target Status, now time.Time) error {
	if !actor.CanAccess(ap) {
		return httperr.ErrForbidden("not_appointment_party")
	}

	if err := CanTransition(Status(ap.Status), target); err != nil {
		return err
	}

	switch target {
	case StatusConfirmed:
		if !actor.OwnsSalonOf(ap) {
			return httperr.ErrForbidden("only_salon_owner_can_confirm")
		}

	case StatusCancelled:
		if !actor.IsClientOf(ap) && !actor.OwnsSalonOf(ap) {
			return httperr.ErrForbidden("not_appointment_party")
		}

	case StatusCompleted:
		if !actor.OwnsSalonOf(ap) {
			return httperr.ErrForbidden("only_salon_owner_can_complete")
		}
		if now.Before(ap.StartTime) {
			return httperr.ErrBusiness("not_started_yet")
		}

	default:
		return httperr.ErrBusiness("invalid_transition")
	}

	ap.Status = string(target)

	switch target {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}

	return nil
}
