package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/middleware"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

// salonFromOwner carrega o salão do admin logado; ErrRecordNotFound
// significa "precisa fazer onboarding", não erro duro
func salonFromOwner(c *gin.Context, db *gorm.DB) (*models.Salon, bool) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	var salon models.Salon
	if err := db.Where("owner_id = ?", profileID).First(&salon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "salon_not_onboarded", "Você ainda não cadastrou seu salão.")
		} else {
			httperr.Internal(c, "failed_to_get_salon", "Erro ao buscar dados do salão.")
		}
		return nil, false
	}

	return &salon, true
}

// --------------------------------------------------
// Tradução de erros de domínio para HTTP
// --------------------------------------------------

var businessMessages = map[string]string{
	"invalid_transition":        "Transição de status inválida para este agendamento.",
	"invalid_service":           "Este serviço não existe mais ou foi desativado.",
	"missing_time":              "Informe um horário para o agendamento.",
	"past_date":                 "Não é possível agendar em data passada.",
	"invalid_date_or_time":      "Data ou hora inválida.",
	"invalid_duration":          "Duração personalizada inválida.",
	"time_conflict":             "Este horário já está ocupado.",
	"stale_status":              "O agendamento foi alterado por outra pessoa. Recarregue e tente novamente.",
	"not_started_yet":           "O horário do agendamento ainda não passou.",
	"salon_inactive":            "Este salão não está recebendo agendamentos.",
	"professional_not_found":    "Profissional não encontrado ou inativo.",
	"invalid_rating":            "A nota deve ser entre 1 e 5.",
	"appointment_not_completed": "Só é possível avaliar atendimentos concluídos.",
	"already_reviewed":          "Este atendimento já foi avaliado.",
}

// writeDomainError traduz a taxonomia do domínio:
// Forbidden nunca vira NotFound — autorização tem que aparecer
func writeDomainError(c *gin.Context, err error) {

	var fe httperr.ForbiddenError
	if errors.As(err, &fe) {
		httperr.Forbidden(c, fe.Code, "Você não pode modificar este agendamento.")
		return
	}

	if rc, ok := httperr.AsReferentialConflict(err); ok {
		httperr.Conflict(
			c,
			"referential_conflict",
			fmt.Sprintf(
				"Existem %d agendamentos vinculados. Desative em vez de excluir.",
				rc.Count,
			),
		)
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		msg := businessMessages[be.Code]
		if msg == "" {
			msg = "Operação inválida."
		}

		switch be.Code {
		case "time_conflict", "stale_status":
			httperr.Conflict(c, be.Code, msg)
		default:
			httperr.BadRequest(c, be.Code, msg)
		}
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "not_found", "Registro não encontrado.")
		return
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}
