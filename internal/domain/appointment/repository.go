package appointment

import (
	"context"
	"time"

	"github.com/edsonbastos2/salon-agenda/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonByOwner(
		ctx context.Context,
		ownerID uint,
	) (*models.Salon, error)

	// -------- Catalog --------
	GetActiveService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	GetActiveProfessional(
		ctx context.Context,
		salonID uint,
		professionalID uint,
	) (*models.Professional, error)

	// -------- Appointment (create / conflict) --------
	// Verifica sobreposição e cria numa única transação com lock,
	// para que duas propostas simultâneas do mesmo horário não passem.
	CreateAppointmentIfSlotFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	// UpdateAppointmentStatus persiste a transição condicionada ao
	// status anterior esperado (compare-and-swap). Retorna
	// stale_status quando outra transição chegou primeiro.
	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
		expected Status,
	) error

	// -------- Listagens --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		salonID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListBookedIntervals(
		ctx context.Context,
		salonID uint,
		professionalID *uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}
