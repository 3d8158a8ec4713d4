package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/edsonbastos2/salon-agenda/internal/domain/appointment"
	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/httpresp"
	"github.com/edsonbastos2/salon-agenda/internal/middleware"
	ucAppointment "github.com/edsonbastos2/salon-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER — agendamentos do cliente logado
// ======================================================

type ClientAppointmentHandler struct {
	db *gorm.DB

	book         *ucAppointment.BookAppointment
	changeStatus *ucAppointment.ChangeStatus
	repo         domain.Repository
}

func NewClientAppointmentHandler(
	db *gorm.DB,
	book *ucAppointment.BookAppointment,
	changeStatus *ucAppointment.ChangeStatus,
	repo domain.Repository,
) *ClientAppointmentHandler {
	return &ClientAppointmentHandler{
		db:           db,
		book:         book,
		changeStatus: changeStatus,
		repo:         repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	SalonID   uint `json:"salon_id" binding:"required"`
	ServiceID uint `json:"service_id" binding:"required"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // slot fixo ou HH:mm livre

	DurationOverrideMin *int   `json:"duration_override_min"`
	Notes               string `json:"notes"`
}

// ======================================================
// BOOK (caminho do cliente — nasce pendente)
// ======================================================

func (h *ClientAppointmentHandler) Book(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextProfileID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		ClientID:            clientID,
		SalonID:             req.SalonID,
		ServiceID:           req.ServiceID,
		Date:                req.Date,
		Time:                req.Time,
		DurationOverrideMin: req.DurationOverrideMin,
		Notes:               req.Notes,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *ClientAppointmentHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextProfileID).(uint)

	aps, err := h.repo.ListAppointmentsForClient(c.Request.Context(), clientID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// CANCEL
// ======================================================

func (h *ClientAppointmentHandler) Cancel(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextProfileID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.changeStatus.Execute(
		c.Request.Context(),
		domain.ClientActor(clientID),
		uint(id),
		domain.StatusCancelled,
	)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}
