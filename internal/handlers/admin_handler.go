package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

// ======================================================
// HANDLER — supervisão da plataforma (super admin)
// ======================================================

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) ListSalons(c *gin.Context) {
	q := h.db.Preload("Owner")

	if activeStr := c.Query("active"); activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var salons []models.Salon
	if err := q.Order("created_at DESC").Find(&salons).Error; err != nil {
		httperr.Internal(c, "failed_to_list_salons", "Erro ao listar salões.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"salons": salons})
}

// setActive: salão nunca é excluído fisicamente, só desativado
func (h *AdminHandler) setActive(c *gin.Context, active bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	result := h.db.
		Model(&models.Salon{}).
		Where("id = ?", id).
		Update("active", active)

	if result.Error != nil {
		httperr.Internal(c, "failed_to_update_salon", "Erro ao atualizar salão.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) DeactivateSalon(c *gin.Context) {
	h.setActive(c, false)
}

func (h *AdminHandler) ActivateSalon(c *gin.Context) {
	h.setActive(c, true)
}
