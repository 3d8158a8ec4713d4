package events

import "github.com/rs/zerolog"

// Subscriber recebe cada evento exatamente uma vez por despacho.
// Entrega ao menos uma vez fim a fim: quem precisa de idempotência
// (notificações) deduplica do seu lado.
type Subscriber interface {
	Name() string
	Handle(ev Event) error
}

type Dispatcher struct {
	subs  []Subscriber
	queue chan Event
	log   zerolog.Logger
	done  chan struct{}
}

func NewDispatcher(log zerolog.Logger, subs ...Subscriber) *Dispatcher {
	d := &Dispatcher{
		subs:  subs,
		queue: make(chan Event, 256),
		log:   log,
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, sub := range d.subs {
			if err := sub.Handle(ev); err != nil {
				d.log.Error().
					Err(err).
					Str("subscriber", sub.Name()).
					Str("event_id", ev.ID).
					Str("kind", string(ev.Kind)).
					Msg("event handling failed")
			}
		}
	}
}

// Dispatch nunca bloqueia a request; fila cheia descarta o evento
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn().
			Str("kind", string(ev.Kind)).
			Uint("appointment_id", ev.AppointmentID).
			Msg("event queue full, dropping event")
	}
}

// Close drena a fila e espera o worker terminar
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
