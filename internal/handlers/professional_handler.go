package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogdomain "github.com/edsonbastos2/salon-agenda/internal/domain/catalog"
	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/httpresp"
	"github.com/edsonbastos2/salon-agenda/internal/models"
	ucCatalog "github.com/edsonbastos2/salon-agenda/internal/usecase/catalog"
)

type ProfessionalHandler struct {
	db    *gorm.DB
	guard *ucCatalog.DeletionGuard
}

func NewProfessionalHandler(db *gorm.DB, guard *ucCatalog.DeletionGuard) *ProfessionalHandler {
	return &ProfessionalHandler{db: db, guard: guard}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	AvatarURL string `json:"avatar_url"`
}

type UpdateProfessionalRequest struct {
	Name      *string `json:"name,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ProfessionalHandler) List(c *gin.Context) {
	salon, ok := salonFromOwner(c, h.db)
	if !ok {
		return
	}

	q := h.db.Where("salon_id = ?", salon.ID)

	if activeStr := c.Query("active"); activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var pros []models.Professional
	if err := q.Order("created_at DESC").Find(&pros).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, pros)
}

func (h *ProfessionalHandler) Create(c *gin.Context) {
	salon, ok := salonFromOwner(c, h.db)
	if !ok {
		return
	}

	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	pro := models.Professional{
		SalonID:   salon.ID,
		Name:      req.Name,
		Specialty: req.Specialty,
		AvatarURL: req.AvatarURL,
		Active:    true,
	}

	if err := h.db.Create(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_create_professional", "Erro ao cadastrar profissional.")
		return
	}

	httpresp.Created(c, pro)
}

func (h *ProfessionalHandler) Update(c *gin.Context) {
	salon, ok := salonFromOwner(c, h.db)
	if !ok {
		return
	}

	id := c.Param("id")

	var pro models.Professional
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salon.ID).
		First(&pro).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_professional", "Erro ao buscar profissional.")
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		pro.Name = *req.Name
	}
	if req.Specialty != nil {
		pro.Specialty = *req.Specialty
	}
	if req.AvatarURL != nil {
		pro.AvatarURL = *req.AvatarURL
	}
	if req.Active != nil {
		pro.Active = *req.Active
	}

	if err := h.db.Save(&pro).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao atualizar profissional.")
		return
	}

	c.JSON(http.StatusOK, pro)
}

func (h *ProfessionalHandler) CanDelete(c *gin.Context) {
	if _, ok := salonFromOwner(c, h.db); !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	result, err := h.guard.CanDelete(c.Request.Context(), catalogdomain.EntityProfessional, uint(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	salon, ok := salonFromOwner(c, h.db)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.guard.Delete(
		c.Request.Context(),
		catalogdomain.EntityProfessional,
		uint(id),
		salon.ID,
	); err != nil {
		writeDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProfessionalHandler) Deactivate(c *gin.Context) {
	salon, ok := salonFromOwner(c, h.db)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.guard.Deactivate(
		c.Request.Context(),
		catalogdomain.EntityProfessional,
		uint(id),
		salon.ID,
	); err != nil {
		writeDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
