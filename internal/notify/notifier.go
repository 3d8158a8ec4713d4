package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edsonbastos2/salon-agenda/internal/events"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

// Store é o que o notifier precisa da persistência
type Store interface {
	SaveNotification(ctx context.Context, n *models.Notification) error
	SalonOwnerID(ctx context.Context, salonID uint) (uint, error)
}

// Publisher empurra o alerta em tempo real (pub/sub); a entrega
// in-app continua valendo mesmo sem publisher
type Publisher interface {
	Publish(ctx context.Context, recipientID uint, n *models.Notification) error
}

// ===============================
// Notifier — subscriber de eventos
// ===============================

type Notifier struct {
	store     Store
	publisher Publisher
	ledger    Ledger
	log       zerolog.Logger
}

func NewNotifier(store Store, publisher Publisher, ledger Ledger, log zerolog.Logger) *Notifier {
	return &Notifier{
		store:     store,
		publisher: publisher,
		ledger:    ledger,
		log:       log,
	}
}

func (n *Notifier) Name() string {
	return "notify"
}

func (n *Notifier) Handle(ev events.Event) error {
	ctx := context.Background()

	key := fmt.Sprintf("%d:%s:%s", ev.AppointmentID, ev.Kind, ev.NewStatus)
	if !n.ledger.FirstDelivery(ctx, key) {
		return nil
	}

	ownerID, err := n.store.SalonOwnerID(ctx, ev.SalonID)
	if err != nil {
		return err
	}

	recipients := []uint{ev.ClientID}
	if ownerID != 0 && ownerID != ev.ClientID {
		recipients = append(recipients, ownerID)
	}

	for _, recipientID := range recipients {
		notification := &models.Notification{
			ID:            uuid.NewString(),
			RecipientID:   recipientID,
			SalonID:       ev.SalonID,
			AppointmentID: ev.AppointmentID,
			Kind:          string(ev.Kind),
			OldStatus:     ev.OldStatus,
			NewStatus:     ev.NewStatus,
			Message:       messageFor(ev),
		}

		if err := n.store.SaveNotification(ctx, notification); err != nil {
			return err
		}

		if n.publisher != nil {
			if err := n.publisher.Publish(ctx, recipientID, notification); err != nil {
				n.log.Warn().
					Err(err).
					Uint("recipient_id", recipientID).
					Msg("realtime publish failed, in-app notification persisted")
			}
		}
	}

	return nil
}

func messageFor(ev events.Event) string {
	when := ev.StartTime.Format("02/01/2006 15:04")

	switch ev.Kind {
	case events.KindAppointmentCreated:
		return fmt.Sprintf("Novo agendamento para %s.", when)
	case events.KindAppointmentReminder:
		return fmt.Sprintf("Lembrete: você tem um horário marcado para %s.", when)
	}

	switch ev.NewStatus {
	case "confirmed":
		return fmt.Sprintf("Seu agendamento de %s foi confirmado.", when)
	case "cancelled":
		return fmt.Sprintf("O agendamento de %s foi cancelado.", when)
	case "completed":
		return fmt.Sprintf("Atendimento de %s concluído. Avalie sua experiência!", when)
	}

	return fmt.Sprintf("Agendamento de %s atualizado.", when)
}
