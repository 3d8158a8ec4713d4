package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edsonbastos2/salon-agenda/internal/httperr"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		ok   bool
	}{
		{"pendente pode confirmar", StatusPending, StatusConfirmed, true},
		{"pendente pode cancelar", StatusPending, StatusCancelled, true},
		{"pendente não pode concluir direto", StatusPending, StatusCompleted, false},
		{"confirmado pode cancelar", StatusConfirmed, StatusCancelled, true},
		{"confirmado pode concluir", StatusConfirmed, StatusCompleted, true},
		{"confirmado não volta a pendente", StatusConfirmed, StatusPending, false},
		{"cancelado é terminal", StatusCancelled, StatusConfirmed, false},
		{"cancelado não reabre como pendente", StatusCancelled, StatusPending, false},
		{"concluído é terminal", StatusCompleted, StatusCancelled, false},
		{"concluído não cancela", StatusCompleted, StatusPending, false},
		{"status não muda para ele mesmo", StatusConfirmed, StatusConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusConfirmed))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.True(t, IsTerminal(StatusCompleted))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusPending))
	assert.True(t, IsValidStatus(StatusCompleted))
	assert.False(t, IsValidStatus(Status("archived")))
	assert.False(t, IsValidStatus(Status("")))
}
