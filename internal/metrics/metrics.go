package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/edsonbastos2/salon-agenda/internal/events"
)

var (
	appointmentsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_appointments_created_total",
			Help: "Agendamentos criados, por status inicial.",
		},
		[]string{"initial_status"},
	)

	statusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salon_appointment_transitions_total",
			Help: "Transições de status aplicadas.",
		},
		[]string{"from", "to"},
	)
)

// Subscriber alimenta os contadores a partir dos mesmos eventos
// que abastecem auditoria e notificações
type Subscriber struct{}

func NewSubscriber() *Subscriber {
	return &Subscriber{}
}

func (s *Subscriber) Name() string {
	return "metrics"
}

func (s *Subscriber) Handle(ev events.Event) error {
	switch ev.Kind {
	case events.KindAppointmentCreated:
		appointmentsCreated.WithLabelValues(ev.NewStatus).Inc()
	case events.KindStatusChanged:
		statusTransitions.WithLabelValues(ev.OldStatus, ev.NewStatus).Inc()
	}
	return nil
}
