package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

func newTestAppointment(status Status) *models.Appointment {
	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	return &models.Appointment{
		ID:        42,
		ClientID:  7,
		SalonID:   3,
		StartTime: start,
		EndTime:   start.Add(45 * time.Minute),
		Status:    string(status),
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus(ClientActor(7)))
	assert.Equal(t, StatusConfirmed, InitialStatus(OwnerActor(3)))
	assert.Equal(t, StatusConfirmed, InitialStatus(SuperAdminActor()))
}

func TestTransition_OwnerConfirms(t *testing.T) {
	ap := newTestAppointment(StatusPending)
	now := ap.StartTime.Add(-24 * time.Hour)

	err := Transition(OwnerActor(3), ap, StatusConfirmed, now)

	require.NoError(t, err)
	assert.Equal(t, string(StatusConfirmed), ap.Status)
	assert.Nil(t, ap.CancelledAt)
	assert.Nil(t, ap.CompletedAt)
}

func TestTransition_ClientCannotConfirm(t *testing.T) {
	ap := newTestAppointment(StatusPending)
	now := ap.StartTime.Add(-24 * time.Hour)

	err := Transition(ClientActor(7), ap, StatusConfirmed, now)

	assert.True(t, httperr.IsForbidden(err))
	assert.Equal(t, string(StatusPending), ap.Status)
}

func TestTransition_StrangerGetsForbidden(t *testing.T) {
	ap := newTestAppointment(StatusPending)
	now := ap.StartTime.Add(-24 * time.Hour)

	// outro cliente
	err := Transition(ClientActor(99), ap, StatusCancelled, now)
	assert.True(t, httperr.IsForbidden(err))

	// dono de outro salão
	err = Transition(OwnerActor(55), ap, StatusCancelled, now)
	assert.True(t, httperr.IsForbidden(err))

	assert.Equal(t, string(StatusPending), ap.Status)
}

func TestTransition_ClientCancels(t *testing.T) {
	ap := newTestAppointment(StatusConfirmed)
	now := ap.StartTime.Add(-2 * time.Hour)

	err := Transition(ClientActor(7), ap, StatusCancelled, now)

	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, now, *ap.CancelledAt)
}

func TestTransition_CompleteBeforeStart(t *testing.T) {
	ap := newTestAppointment(StatusConfirmed)
	now := ap.StartTime.Add(-1 * time.Minute)

	err := Transition(OwnerActor(3), ap, StatusCompleted, now)

	assert.True(t, httperr.IsBusiness(err, "not_started_yet"))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}

func TestTransition_CompleteAfterStart(t *testing.T) {
	ap := newTestAppointment(StatusConfirmed)
	now := ap.StartTime.Add(50 * time.Minute)

	err := Transition(OwnerActor(3), ap, StatusCompleted, now)

	require.NoError(t, err)
	assert.Equal(t, string(StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)
}

func TestTransition_ClientCannotComplete(t *testing.T) {
	ap := newTestAppointment(StatusConfirmed)
	now := ap.StartTime.Add(time.Hour)

	err := Transition(ClientActor(7), ap, StatusCompleted, now)

	assert.True(t, httperr.IsForbidden(err))
}

func TestTransition_TerminalStatesRejectEverything(t *testing.T) {
	for _, from := range []Status{StatusCancelled, StatusCompleted} {
		for _, to := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
			ap := newTestAppointment(from)
			now := ap.StartTime.Add(time.Hour)

			err := Transition(OwnerActor(3), ap, to, now)
			assert.Error(t, err, "%s -> %s deveria falhar", from, to)
			assert.Equal(t, string(from), ap.Status)
		}
	}
}

func TestTransition_SuperAdminActsAsOwner(t *testing.T) {
	ap := newTestAppointment(StatusPending)
	now := ap.StartTime.Add(-24 * time.Hour)

	err := Transition(SuperAdminActor(), ap, StatusConfirmed, now)

	require.NoError(t, err)
	assert.Equal(t, string(StatusConfirmed), ap.Status)
}
