package jobs

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domain "github.com/edsonbastos2/salon-agenda/internal/domain/appointment"
	"github.com/edsonbastos2/salon-agenda/internal/events"
	"github.com/edsonbastos2/salon-agenda/internal/models"
	"github.com/edsonbastos2/salon-agenda/internal/notify"
)

// ======================================================
// Rotinas agendadas: lembrete diário e limpeza do ledger
// ======================================================

type Scheduler struct {
	db         *gorm.DB
	dispatcher *events.Dispatcher
	ledger     *notify.MemoryLedger
	log        zerolog.Logger
	cron       *cron.Cron
}

func NewScheduler(
	db *gorm.DB,
	dispatcher *events.Dispatcher,
	ledger *notify.MemoryLedger,
	log zerolog.Logger,
) *Scheduler {
	return &Scheduler{
		db:         db,
		dispatcher: dispatcher,
		ledger:     ledger,
		log:        log,
		cron:       cron.New(),
	}
}

func (s *Scheduler) Start() {
	// 8h: lembra os clientes dos horários confirmados de amanhã
	s.cron.AddFunc("0 8 * * *", s.sendDailyReminders)

	// ledger em memória precisa de varredura; no Redis o TTL resolve
	if s.ledger != nil {
		s.cron.AddFunc("0 3 * * *", s.sweepLedger)
	}

	s.cron.Start()
	s.log.Info().Msg("job scheduler started")
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) sendDailyReminders() {
	start := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	var aps []models.Appointment
	if err := s.db.
		Where(
			"status = ? AND start_time >= ? AND start_time < ?",
			string(domain.StatusConfirmed), start, end,
		).
		Find(&aps).Error; err != nil {
		s.log.Error().Err(err).Msg("reminder query failed")
		return
	}

	for _, ap := range aps {
		s.dispatcher.Dispatch(events.New(
			events.KindAppointmentReminder,
			ap.ID,
			ap.SalonID,
			ap.ClientID,
			"",
			ap.Status,
			ap.StartTime,
		))
	}

	s.log.Info().Int("appointments", len(aps)).Msg("daily reminders dispatched")
}

func (s *Scheduler) sweepLedger() {
	removed := s.ledger.Sweep(30 * 24 * time.Hour)
	s.log.Info().Int("removed", removed).Msg("notification ledger swept")
}
