package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/edsonbastos2/salon-agenda/internal/domain/catalog"
	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

// fake com a mesma semântica do repositório real: contagem bloqueia
// exclusão, desativação passa sempre
type fakeCatalogRepo struct {
	references  map[uint]int64
	deleted     []uint
	deactivated []uint
}

var _ domain.Repository = (*fakeCatalogRepo)(nil)

func (f *fakeCatalogRepo) ListActiveServices(_ context.Context, _ uint, _ bool) ([]models.Service, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) ListActiveProfessionals(_ context.Context, _ uint) ([]models.Professional, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) CountAppointmentReferences(_ context.Context, _ string, entityID uint) (int64, error) {
	return f.references[entityID], nil
}

func (f *fakeCatalogRepo) DeleteIfUnreferenced(_ context.Context, entity string, entityID, _ uint) error {
	if count := f.references[entityID]; count > 0 {
		return httperr.ErrReferentialConflict(entity, count)
	}
	f.deleted = append(f.deleted, entityID)
	return nil
}

func (f *fakeCatalogRepo) Deactivate(_ context.Context, _ string, entityID, _ uint) error {
	f.deactivated = append(f.deactivated, entityID)
	return nil
}

func TestDeletionGuard_CanDelete(t *testing.T) {
	repo := &fakeCatalogRepo{references: map[uint]int64{10: 3}}
	guard := NewDeletionGuard(repo)

	blocked, err := guard.CanDelete(context.Background(), domain.EntityService, 10)
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)
	assert.Equal(t, int64(3), blocked.BlockingCount)

	free, err := guard.CanDelete(context.Background(), domain.EntityService, 11)
	require.NoError(t, err)
	assert.True(t, free.Allowed)
	assert.Zero(t, free.BlockingCount)
}

func TestDeletionGuard_DeleteBlockedByReferences(t *testing.T) {
	repo := &fakeCatalogRepo{references: map[uint]int64{10: 2}}
	guard := NewDeletionGuard(repo)

	err := guard.Delete(context.Background(), domain.EntityService, 10, 3)

	rc, ok := httperr.AsReferentialConflict(err)
	require.True(t, ok)
	assert.Equal(t, domain.EntityService, rc.Entity)
	assert.Equal(t, int64(2), rc.Count)
	assert.Empty(t, repo.deleted)
}

func TestDeletionGuard_DeleteUnreferenced(t *testing.T) {
	repo := &fakeCatalogRepo{references: map[uint]int64{}}
	guard := NewDeletionGuard(repo)

	err := guard.Delete(context.Background(), domain.EntityProfessional, 5, 3)

	require.NoError(t, err)
	assert.Equal(t, []uint{5}, repo.deleted)
}

func TestDeletionGuard_DeactivateAlwaysAllowed(t *testing.T) {
	// mesmo com agendamentos históricos apontando para a entidade
	repo := &fakeCatalogRepo{references: map[uint]int64{10: 7}}
	guard := NewDeletionGuard(repo)

	err := guard.Deactivate(context.Background(), domain.EntityService, 10, 3)

	require.NoError(t, err)
	assert.Equal(t, []uint{10}, repo.deactivated)
}
