package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/edsonbastos2/salon-agenda/internal/domain/appointment"
	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/middleware"
	"github.com/edsonbastos2/salon-agenda/internal/models"
	"github.com/edsonbastos2/salon-agenda/internal/timezone"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

// --------- Requests ---------

type CreateSalonRequest struct {
	Name            string `json:"name" binding:"required"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Timezone        string `json:"timezone"`
	OpeningHours    string `json:"opening_hours"`
	Differentiators string `json:"differentiators"`
	About           string `json:"about"`
}

type UpdateSalonRequest struct {
	Name            *string `json:"name,omitempty"`
	Address         *string `json:"address,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Timezone        *string `json:"timezone,omitempty"`
	OpeningHours    *string `json:"opening_hours,omitempty"`
	Differentiators *string `json:"differentiators,omitempty"`
	About           *string `json:"about,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

// Create é o onboarding do dono: um salão por perfil admin
func (h *SalonHandler) Create(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	var count int64
	h.db.Model(&models.Salon{}).Where("owner_id = ?", profileID).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "salon_already_exists", "Você já possui um salão cadastrado.")
		return
	}

	var req CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	tz := req.Timezone
	if !timezone.IsValid(tz) {
		tz = timezone.Default
	}

	salon := models.Salon{
		OwnerID:         profileID,
		Name:            req.Name,
		Address:         req.Address,
		Phone:           req.Phone,
		Timezone:        tz,
		OpeningHours:    req.OpeningHours,
		Differentiators: req.Differentiators,
		About:           req.About,
		Active:          true,
	}

	if err := h.db.Create(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_create_salon", "Erro ao cadastrar salão.")
		return
	}

	c.JSON(http.StatusCreated, salon)
}

func (h *SalonHandler) GetMine(c *gin.Context) {
	salon, ok := salonFromOwner(c, h.db)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) UpdateMine(c *gin.Context) {
	salon, ok := salonFromOwner(c, h.db)
	if !ok {
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Timezone inválido.")
			return
		}
		salon.Timezone = *req.Timezone
	}
	if req.OpeningHours != nil {
		salon.OpeningHours = *req.OpeningHours
	}
	if req.Differentiators != nil {
		salon.Differentiators = *req.Differentiators
	}
	if req.About != nil {
		salon.About = *req.About
	}
	if req.Active != nil {
		salon.Active = *req.Active
	}

	if err := h.db.Save(salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Erro ao salvar as configurações do salão.")
		return
	}

	c.JSON(http.StatusOK, salon)
}

// Dashboard: contagem por status no dia e no mês corrente
func (h *SalonHandler) Dashboard(c *gin.Context) {
	salon, ok := salonFromOwner(c, h.db)
	if !ok {
		return
	}

	loc := timezone.Location(salon.Timezone)
	now := time.Now().In(loc)

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	type statusCount struct {
		Status string `json:"status"`
		Total  int64  `json:"total"`
	}

	countByStatus := func(from time.Time) []statusCount {
		var counts []statusCount
		h.db.Model(&models.Appointment{}).
			Select("status, COUNT(*) as total").
			Where("salon_id = ? AND start_time >= ?", salon.ID, from).
			Group("status").
			Scan(&counts)
		return counts
	}

	var pendingTotal int64
	h.db.Model(&models.Appointment{}).
		Where("salon_id = ? AND status = ?", salon.ID, string(domain.StatusPending)).
		Count(&pendingTotal)

	c.JSON(http.StatusOK, gin.H{
		"today":            countByStatus(dayStart),
		"month":            countByStatus(monthStart),
		"pending_approval": pendingTotal,
	})
}
