package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/edsonbastos2/salon-agenda/internal/events"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

// Subscriber persiste todo evento de agendamento como AuditLog,
// para a visão de supervisão do super admin
type Subscriber struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Subscriber {
	return &Subscriber{db: db}
}

func (s *Subscriber) Name() string {
	return "audit"
}

func (s *Subscriber) Handle(ev events.Event) error {
	meta, _ := json.Marshal(map[string]any{
		"event_id":   ev.ID,
		"old_status": ev.OldStatus,
		"new_status": ev.NewStatus,
		"start_time": ev.StartTime,
	})

	entityID := ev.AppointmentID
	log := models.AuditLog{
		SalonID:  ev.SalonID,
		Action:   string(ev.Kind),
		Entity:   "appointment",
		EntityID: &entityID,
		Metadata: string(meta),
	}

	return s.db.Create(&log).Error
}
