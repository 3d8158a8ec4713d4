package catalog

import (
	"context"

	domain "github.com/edsonbastos2/salon-agenda/internal/domain/catalog"
)

// ======================================================
// USE CASE — deletion guard
// ======================================================

// DeletionGuard protege serviços e profissionais contra exclusão
// física enquanto houver agendamento referenciando (qualquer
// status — histórico também conta). Desativar é sempre permitido.
type DeletionGuard struct {
	repo domain.Repository
}

func NewDeletionGuard(repo domain.Repository) *DeletionGuard {
	return &DeletionGuard{repo: repo}
}

type CanDeleteResult struct {
	Allowed       bool  `json:"allowed"`
	BlockingCount int64 `json:"blocking_count"`
}

// CanDelete é só consulta; a exclusão real refaz a checagem de
// forma atômica dentro de Delete
func (uc *DeletionGuard) CanDelete(
	ctx context.Context,
	entity string,
	entityID uint,
) (CanDeleteResult, error) {

	count, err := uc.repo.CountAppointmentReferences(ctx, entity, entityID)
	if err != nil {
		return CanDeleteResult{}, err
	}

	return CanDeleteResult{
		Allowed:       count == 0,
		BlockingCount: count,
	}, nil
}

func (uc *DeletionGuard) Delete(
	ctx context.Context,
	entity string,
	entityID uint,
	salonID uint,
) error {
	return uc.repo.DeleteIfUnreferenced(ctx, entity, entityID, salonID)
}

func (uc *DeletionGuard) Deactivate(
	ctx context.Context,
	entity string,
	entityID uint,
	salonID uint,
) error {
	return uc.repo.Deactivate(ctx, entity, entityID, salonID)
}
