package appointment

import "github.com/edsonbastos2/salon-agenda/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// transições válidas; cancelled e completed são terminais
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

func IsValidStatus(s Status) bool {
	_, ok := validTransitions[s]
	return ok
}

func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransition valida a transição contra a tabela do domínio
func CanTransition(from, to Status) error {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}
