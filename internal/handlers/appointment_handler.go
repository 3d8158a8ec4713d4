package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/edsonbastos2/salon-agenda/internal/domain/appointment"
	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/timezone"
	ucAppointment "github.com/edsonbastos2/salon-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER — agenda do dono do salão
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	createPrivate *ucAppointment.CreatePrivateAppointment
	changeStatus  *ucAppointment.ChangeStatus
	listByDate    *ucAppointment.ListAppointmentsByDate
	listByMonth   *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	db *gorm.DB,
	createPrivate *ucAppointment.CreatePrivateAppointment,
	changeStatus *ucAppointment.ChangeStatus,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:            db,
		createPrivate: createPrivate,
		changeStatus:  changeStatus,
		listByDate:    listByDate,
		listByMonth:   listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePrivateAppointmentRequest struct {
	ClientID       uint  `json:"client_id" binding:"required"`
	ServiceID      uint  `json:"service_id" binding:"required"`
	ProfessionalID *uint `json:"professional_id"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm

	DurationOverrideMin *int   `json:"duration_override_min"`
	Notes               string `json:"notes"`
}

// ======================================================
// CREATE (caminho do dono — nasce confirmado)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	salon, ok := salonFromOwner(c, h.db)
	if !ok {
		return
	}

	var req CreatePrivateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createPrivate.Execute(
		c.Request.Context(),
		domain.OwnerActor(salon.ID),
		ucAppointment.CreatePrivateAppointmentInput{
			SalonID:             salon.ID,
			ClientID:            req.ClientID,
			ServiceID:           req.ServiceID,
			ProfessionalID:      req.ProfessionalID,
			Date:                req.Date,
			Time:                req.Time,
			DurationOverrideMin: req.DurationOverrideMin,
			Notes:               req.Notes,
		},
	)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	salon, ok := salonFromOwner(c, h.db)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(salon.Timezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	items, err := h.listByDate.Execute(c.Request.Context(), salon.ID, date)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	salon, ok := salonFromOwner(c, h.db)
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	items, err := h.listByMonth.Execute(c.Request.Context(), salon.ID, year, month)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// ======================================================
// TRANSIÇÕES (confirmar / cancelar / concluir)
// ======================================================

func (h *AppointmentHandler) transition(c *gin.Context, target domain.Status) {
	salon, ok := salonFromOwner(c, h.db)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.changeStatus.Execute(
		c.Request.Context(),
		domain.OwnerActor(salon.ID),
		uint(id),
		target,
	)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, domain.StatusConfirmed)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, domain.StatusCancelled)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, domain.StatusCompleted)
}
