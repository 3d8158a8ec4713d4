package catalog

import (
	"context"

	"github.com/edsonbastos2/salon-agenda/internal/models"
)

// EntityService / EntityProfessional identificam o alvo do deletion guard
const (
	EntityService      = "service"
	EntityProfessional = "professional"
)

type Repository interface {
	ListActiveServices(
		ctx context.Context,
		salonID uint,
		newestFirst bool,
	) ([]models.Service, error)

	ListActiveProfessionals(
		ctx context.Context,
		salonID uint,
	) ([]models.Professional, error)

	// Contagem de agendamentos que referenciam a entidade,
	// qualquer status — histórico também bloqueia exclusão.
	CountAppointmentReferences(
		ctx context.Context,
		entity string,
		entityID uint,
	) (int64, error)

	// DeleteIfUnreferenced roda contagem + exclusão numa única
	// transação com lock, fechando a corrida check-then-delete.
	// Retorna ReferentialConflictError quando há referências.
	DeleteIfUnreferenced(
		ctx context.Context,
		entity string,
		entityID uint,
		salonID uint,
	) error

	// Desativação é sempre permitida, com qualquer contagem
	Deactivate(
		ctx context.Context,
		entity string,
		entityID uint,
		salonID uint,
	) error
}
