package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/edsonbastos2/salon-agenda/internal/domain/appointment"
	"github.com/edsonbastos2/salon-agenda/internal/events"
	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

func changeStatusFixture(status domain.Status, start time.Time) (*fakeRepo, *captureSubscriber, *ChangeStatus, *events.Dispatcher) {
	repo := newFakeRepo()
	repo.salons[3] = &models.Salon{ID: 3, OwnerID: 2, Active: true, Timezone: "UTC"}
	repo.appointments[42] = &models.Appointment{
		ID:        42,
		ClientID:  7,
		SalonID:   3,
		ServiceID: 10,
		StartTime: start,
		EndTime:   start.Add(45 * time.Minute),
		Status:    string(status),
	}

	capture := &captureSubscriber{}
	dispatcher := events.NewDispatcher(zerolog.Nop(), capture)

	return repo, capture, NewChangeStatus(repo, dispatcher), dispatcher
}

func TestChangeStatus_OwnerConfirms(t *testing.T) {
	repo, capture, uc, dispatcher := changeStatusFixture(
		domain.StatusPending,
		time.Now().UTC().Add(24*time.Hour),
	)

	ap, err := uc.Execute(context.Background(), domain.OwnerActor(3), 42, domain.StatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)
	require.Len(t, repo.updated, 1)

	// exatamente um evento, com o status anterior preservado
	dispatcher.Close()
	evs := capture.all()
	require.Len(t, evs, 1)
	assert.Equal(t, events.KindStatusChanged, evs[0].Kind)
	assert.Equal(t, "pending", evs[0].OldStatus)
	assert.Equal(t, "confirmed", evs[0].NewStatus)
}

func TestChangeStatus_ClientCannotConfirm(t *testing.T) {
	repo, capture, uc, dispatcher := changeStatusFixture(
		domain.StatusPending,
		time.Now().UTC().Add(24*time.Hour),
	)

	_, err := uc.Execute(context.Background(), domain.ClientActor(7), 42, domain.StatusConfirmed)

	assert.True(t, httperr.IsForbidden(err))
	assert.Empty(t, repo.updated)

	dispatcher.Close()
	assert.Empty(t, capture.all())
}

func TestChangeStatus_ClientCancelsOwn(t *testing.T) {
	repo, _, uc, dispatcher := changeStatusFixture(
		domain.StatusConfirmed,
		time.Now().UTC().Add(24*time.Hour),
	)
	defer dispatcher.Close()

	ap, err := uc.Execute(context.Background(), domain.ClientActor(7), 42, domain.StatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)
	assert.NotNil(t, ap.CancelledAt)
	assert.Equal(t, "cancelled", repo.appointments[42].Status)
}

func TestChangeStatus_OtherClientGetsForbidden(t *testing.T) {
	_, _, uc, dispatcher := changeStatusFixture(
		domain.StatusConfirmed,
		time.Now().UTC().Add(24*time.Hour),
	)
	defer dispatcher.Close()

	_, err := uc.Execute(context.Background(), domain.ClientActor(99), 42, domain.StatusCancelled)

	// nunca NotFound: o agendamento existe, o actor é que não pertence a ele
	assert.True(t, httperr.IsForbidden(err))
}

func TestChangeStatus_CompleteBeforeStart(t *testing.T) {
	_, _, uc, dispatcher := changeStatusFixture(
		domain.StatusConfirmed,
		time.Now().UTC().Add(24*time.Hour),
	)
	defer dispatcher.Close()

	_, err := uc.Execute(context.Background(), domain.OwnerActor(3), 42, domain.StatusCompleted)

	assert.True(t, httperr.IsBusiness(err, "not_started_yet"))
}

func TestChangeStatus_CompleteAfterStart(t *testing.T) {
	_, capture, uc, dispatcher := changeStatusFixture(
		domain.StatusConfirmed,
		time.Now().UTC().Add(-2*time.Hour),
	)

	ap, err := uc.Execute(context.Background(), domain.OwnerActor(3), 42, domain.StatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, "completed", ap.Status)
	assert.NotNil(t, ap.CompletedAt)

	dispatcher.Close()
	evs := capture.all()
	require.Len(t, evs, 1)
	assert.Equal(t, "completed", evs[0].NewStatus)
}

func TestChangeStatus_TerminalRejected(t *testing.T) {
	repo, capture, uc, dispatcher := changeStatusFixture(
		domain.StatusCancelled,
		time.Now().UTC().Add(24*time.Hour),
	)

	_, err := uc.Execute(context.Background(), domain.OwnerActor(3), 42, domain.StatusConfirmed)

	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	assert.Empty(t, repo.updated)

	dispatcher.Close()
	assert.Empty(t, capture.all())
}

func TestChangeStatus_LostRaceEmitsNothing(t *testing.T) {
	repo, capture, uc, dispatcher := changeStatusFixture(
		domain.StatusPending,
		time.Now().UTC().Add(24*time.Hour),
	)
	repo.stale = true

	_, err := uc.Execute(context.Background(), domain.OwnerActor(3), 42, domain.StatusConfirmed)

	assert.True(t, httperr.IsBusiness(err, "stale_status"))

	// transição que perdeu o CAS não pode emitir evento
	dispatcher.Close()
	assert.Empty(t, capture.all())
}
