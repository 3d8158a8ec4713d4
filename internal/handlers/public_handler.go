package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogdomain "github.com/edsonbastos2/salon-agenda/internal/domain/catalog"
	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/models"
	ucAppointment "github.com/edsonbastos2/salon-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER — descoberta pública de salões
// ======================================================

type PublicHandler struct {
	db           *gorm.DB
	catalog      catalogdomain.Repository
	availability *ucAppointment.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	catalog catalogdomain.Repository,
	availability *ucAppointment.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		catalog:      catalog,
		availability: availability,
	}
}

// ======================================================
// SALONS
// ======================================================

func (h *PublicHandler) ListSalons(c *gin.Context) {
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = true")

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ?", like, like)
	}

	var salons []models.Salon
	if err := q.Order("name ASC").Find(&salons).Error; err != nil {
		httperr.Internal(c, "failed_to_list_salons", "Erro ao listar salões.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"salons": salons})
}

func (h *PublicHandler) GetSalon(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var salon models.Salon
	if err := h.db.Where("id = ? AND active = true", id).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	services, err := h.catalog.ListActiveServices(c.Request.Context(), salon.ID, false)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	professionals, err := h.catalog.ListActiveProfessionals(c.Request.Context(), salon.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	var reviews []models.Review
	h.db.Preload("Client").
		Where("salon_id = ?", salon.ID).
		Order("created_at DESC").
		Limit(20).
		Find(&reviews)

	c.JSON(http.StatusOK, gin.H{
		"salon":         salon,
		"services":      services,
		"professionals": professionals,
		"reviews":       reviews,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	salonID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "missing_service", "Informe o serviço desejado.")
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data desejada.")
		return
	}

	var professionalID *uint
	if p := c.Query("professional_id"); p != "" {
		if pid, err := strconv.ParseUint(p, 10, 64); err == nil {
			v := uint(pid)
			professionalID = &v
		}
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		SalonID:        uint(salonID),
		ServiceID:      uint(serviceID),
		ProfessionalID: professionalID,
		Date:           date,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}
