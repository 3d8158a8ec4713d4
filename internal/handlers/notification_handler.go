package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/middleware"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

// Feed in-app; o tempo real chega pelo pub/sub, mas a listagem
// aqui é a fonte de verdade (entrega ao menos uma vez)
type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

func (h *NotificationHandler) List(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	q := h.db.Where("recipient_id = ?", profileID)

	if c.Query("unread") == "true" {
		q = q.Where("read = false")
	}

	var notifications []models.Notification
	if err := q.
		Order("created_at DESC").
		Limit(100).
		Find(&notifications).Error; err != nil {

		httperr.Internal(c, "failed_to_list_notifications", "Erro ao listar notificações.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)
	id := c.Param("id")

	result := h.db.
		Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", id, profileID).
		Update("read", true)

	if result.Error != nil {
		httperr.Internal(c, "failed_to_mark_read", "Erro ao marcar notificação.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "notification_not_found", "Notificação não encontrada.")
		return
	}

	c.Status(http.StatusNoContent)
}
