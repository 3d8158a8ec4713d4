package events

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubscriber struct {
	mu     sync.Mutex
	name   string
	events []Event
	err    error
}

func (r *recordingSubscriber) Name() string { return r.name }

func (r *recordingSubscriber) Handle(ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}

func (r *recordingSubscriber) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func TestDispatcher_FanOut(t *testing.T) {
	a := &recordingSubscriber{name: "a"}
	b := &recordingSubscriber{name: "b"}
	d := NewDispatcher(zerolog.Nop(), a, b)

	ev := New(KindStatusChanged, 42, 3, 7, "pending", "confirmed", time.Now())
	d.Dispatch(ev)
	d.Close()

	require.Len(t, a.all(), 1)
	require.Len(t, b.all(), 1)
	assert.Equal(t, ev.ID, a.all()[0].ID)
	assert.Equal(t, ev.ID, b.all()[0].ID)
}

func TestDispatcher_SubscriberErrorDoesNotStopOthers(t *testing.T) {
	failing := &recordingSubscriber{name: "failing", err: errors.New("boom")}
	healthy := &recordingSubscriber{name: "healthy"}
	d := NewDispatcher(zerolog.Nop(), failing, healthy)

	d.Dispatch(New(KindAppointmentCreated, 1, 3, 7, "", "pending", time.Now()))
	d.Close()

	assert.Len(t, failing.all(), 1)
	assert.Len(t, healthy.all(), 1)
}

func TestDispatcher_EachDispatchDeliveredOnce(t *testing.T) {
	sub := &recordingSubscriber{name: "sub"}
	d := NewDispatcher(zerolog.Nop(), sub)

	for i := 0; i < 10; i++ {
		d.Dispatch(New(KindStatusChanged, uint(i), 3, 7, "pending", "confirmed", time.Now()))
	}
	d.Close()

	evs := sub.all()
	require.Len(t, evs, 10)

	seen := make(map[string]bool)
	for _, ev := range evs {
		assert.False(t, seen[ev.ID], "evento %s entregue mais de uma vez", ev.ID)
		seen[ev.ID] = true
	}
}

func TestNew_FillsIdentity(t *testing.T) {
	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	ev := New(KindStatusChanged, 42, 3, 7, "pending", "confirmed", start)

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, uint(42), ev.AppointmentID)
	assert.Equal(t, uint(3), ev.SalonID)
	assert.Equal(t, uint(7), ev.ClientID)
	assert.Equal(t, start, ev.StartTime)
	assert.False(t, ev.OccurredAt.IsZero())
}
