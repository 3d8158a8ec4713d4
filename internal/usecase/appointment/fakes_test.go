package appointment

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/edsonbastos2/salon-agenda/internal/domain/appointment"
	"github.com/edsonbastos2/salon-agenda/internal/events"
	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

// ===============================
// Fake do Repository para os testes de use case
// ===============================

type fakeRepo struct {
	salons        map[uint]*models.Salon
	services      map[uint]*models.Service
	professionals map[uint]*models.Professional
	appointments  map[uint]*models.Appointment

	booked []models.Appointment

	conflict bool // próxima criação colide com horário ocupado
	stale    bool // próximo CAS perde a corrida

	created []*models.Appointment
	updated []*models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salons:        make(map[uint]*models.Salon),
		services:      make(map[uint]*models.Service),
		professionals: make(map[uint]*models.Professional),
		appointments:  make(map[uint]*models.Appointment),
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	s, ok := f.salons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeRepo) GetSalonByOwner(_ context.Context, ownerID uint) (*models.Salon, error) {
	for _, s := range f.salons {
		if s.OwnerID == ownerID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetActiveService(_ context.Context, salonID, serviceID uint) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok || svc.SalonID != salonID || !svc.Active {
		return nil, gorm.ErrRecordNotFound
	}
	return svc, nil
}

func (f *fakeRepo) GetActiveProfessional(_ context.Context, salonID, professionalID uint) (*models.Professional, error) {
	p, ok := f.professionals[professionalID]
	if !ok || p.SalonID != salonID || !p.Active {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeRepo) CreateAppointmentIfSlotFree(_ context.Context, ap *models.Appointment) error {
	if f.conflict {
		return httperr.ErrBusiness("time_conflict")
	}
	ap.ID = uint(len(f.created) + 1)
	f.created = append(f.created, ap)
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, appointmentID uint) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointmentStatus(_ context.Context, ap *models.Appointment, expected domain.Status) error {
	if f.stale {
		return httperr.ErrBusiness("stale_status")
	}
	current, ok := f.appointments[ap.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if domain.Status(current.Status) != expected {
		return httperr.ErrBusiness("stale_status")
	}
	cp := *ap
	f.appointments[ap.ID] = &cp
	f.updated = append(f.updated, &cp)
	return nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, salonID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.booked {
		if ap.SalonID == salonID && ap.StartTime.Before(end) && ap.EndTime.After(start) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBookedIntervals(_ context.Context, salonID uint, professionalID *uint, start, end time.Time) ([]models.Appointment, error) {
	return f.ListAppointmentsForPeriod(context.Background(), salonID, start, end)
}

func (f *fakeRepo) ListAppointmentsForClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.ClientID == clientID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

// ===============================
// Captura de eventos despachados
// ===============================

type captureSubscriber struct {
	mu     sync.Mutex
	events []events.Event
}

func (c *captureSubscriber) Name() string { return "capture" }

func (c *captureSubscriber) Handle(ev events.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
	return nil
}

func (c *captureSubscriber) all() []events.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]events.Event(nil), c.events...)
}
