package notify

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edsonbastos2/salon-agenda/internal/events"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

type fakeStore struct {
	ownerID uint
	saved   []*models.Notification
}

func (f *fakeStore) SaveNotification(_ context.Context, n *models.Notification) error {
	f.saved = append(f.saved, n)
	return nil
}

func (f *fakeStore) SalonOwnerID(_ context.Context, _ uint) (uint, error) {
	return f.ownerID, nil
}

type fakePublisher struct {
	published []uint
}

func (f *fakePublisher) Publish(_ context.Context, recipientID uint, _ *models.Notification) error {
	f.published = append(f.published, recipientID)
	return nil
}

func statusEvent() events.Event {
	return events.New(
		events.KindStatusChanged,
		42, 3, 7,
		"pending", "confirmed",
		time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
	)
}

func TestNotifier_NotifiesClientAndOwner(t *testing.T) {
	store := &fakeStore{ownerID: 2}
	pub := &fakePublisher{}
	n := NewNotifier(store, pub, NewMemoryLedger(), zerolog.Nop())

	require.NoError(t, n.Handle(statusEvent()))

	require.Len(t, store.saved, 2)
	assert.Equal(t, uint(7), store.saved[0].RecipientID)
	assert.Equal(t, uint(2), store.saved[1].RecipientID)
	assert.Equal(t, []uint{7, 2}, pub.published)

	for _, saved := range store.saved {
		assert.NotEmpty(t, saved.ID)
		assert.Equal(t, "pending", saved.OldStatus)
		assert.Equal(t, "confirmed", saved.NewStatus)
		assert.NotEmpty(t, saved.Message)
	}
}

func TestNotifier_DuplicateDeliveryYieldsOneAlert(t *testing.T) {
	store := &fakeStore{ownerID: 2}
	n := NewNotifier(store, nil, NewMemoryLedger(), zerolog.Nop())

	ev := statusEvent()

	// mesma transição entregue duas vezes (retry do despacho)
	require.NoError(t, n.Handle(ev))
	require.NoError(t, n.Handle(ev))

	assert.Len(t, store.saved, 2) // cliente + dono, uma vez cada
}

func TestNotifier_DistinctTransitionsAreNotDeduped(t *testing.T) {
	store := &fakeStore{ownerID: 2}
	n := NewNotifier(store, nil, NewMemoryLedger(), zerolog.Nop())

	confirmed := statusEvent()

	cancelled := events.New(
		events.KindStatusChanged,
		42, 3, 7,
		"confirmed", "cancelled",
		time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
	)

	require.NoError(t, n.Handle(confirmed))
	require.NoError(t, n.Handle(cancelled))

	assert.Len(t, store.saved, 4)
}

func TestNotifier_OwnerBookingOwnSalon(t *testing.T) {
	// dono agendando no próprio salão: um único destinatário
	store := &fakeStore{ownerID: 7}
	n := NewNotifier(store, nil, NewMemoryLedger(), zerolog.Nop())

	require.NoError(t, n.Handle(statusEvent()))

	require.Len(t, store.saved, 1)
	assert.Equal(t, uint(7), store.saved[0].RecipientID)
}

func TestNotifier_WorksWithoutPublisher(t *testing.T) {
	store := &fakeStore{ownerID: 2}
	n := NewNotifier(store, nil, NewMemoryLedger(), zerolog.Nop())

	require.NoError(t, n.Handle(statusEvent()))
	assert.Len(t, store.saved, 2)
}

func TestMemoryLedger_FirstDelivery(t *testing.T) {
	l := NewMemoryLedger()
	ctx := context.Background()

	assert.True(t, l.FirstDelivery(ctx, "42:status_changed:confirmed"))
	assert.False(t, l.FirstDelivery(ctx, "42:status_changed:confirmed"))
	assert.True(t, l.FirstDelivery(ctx, "42:status_changed:cancelled"))
}

func TestMemoryLedger_Sweep(t *testing.T) {
	l := NewMemoryLedger()
	ctx := context.Background()

	l.FirstDelivery(ctx, "a")
	l.FirstDelivery(ctx, "b")

	// nada velho o suficiente ainda
	assert.Zero(t, l.Sweep(time.Hour))

	// com maxAge zero tudo é elegível
	assert.Equal(t, 2, l.Sweep(0))

	// varrida a chave, a entrega volta a valer como primeira
	assert.True(t, l.FirstDelivery(ctx, "a"))
}
