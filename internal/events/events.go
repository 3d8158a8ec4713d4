package events

import (
	"time"

	"github.com/google/uuid"
)

// ===============================
// Eventos do ciclo de vida do agendamento
// ===============================

type Kind string

const (
	KindAppointmentCreated  Kind = "appointment_created"
	KindStatusChanged       Kind = "status_changed"
	KindAppointmentReminder Kind = "appointment_reminder"
)

type Event struct {
	ID   string `json:"id"`
	Kind Kind   `json:"kind"`

	AppointmentID uint `json:"appointment_id"`
	SalonID       uint `json:"salon_id"`
	ClientID      uint `json:"client_id"`

	OldStatus string `json:"old_status,omitempty"`
	NewStatus string `json:"new_status"`

	StartTime  time.Time `json:"start_time"`
	OccurredAt time.Time `json:"occurred_at"`
}

func New(kind Kind, appointmentID, salonID, clientID uint, oldStatus, newStatus string, startTime time.Time) Event {
	return Event{
		ID:            uuid.NewString(),
		Kind:          kind,
		AppointmentID: appointmentID,
		SalonID:       salonID,
		ClientID:      clientID,
		OldStatus:     oldStatus,
		NewStatus:     newStatus,
		StartTime:     startTime,
		OccurredAt:    time.Now(),
	}
}
