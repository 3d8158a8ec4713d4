package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edsonbastos2/salon-agenda/internal/middleware"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	profileID := c.MustGet(middleware.ContextProfileID).(uint)

	var profile models.Profile
	if err := h.db.First(&profile, profileID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile_not_found"})
		return
	}

	resp := gin.H{
		"profile": gin.H{
			"id":         profile.ID,
			"full_name":  profile.FullName,
			"email":      profile.Email,
			"phone":      profile.Phone,
			"role":       profile.Role,
			"avatar_url": profile.AvatarURL,
		},
	}

	// admin ainda sem salão está em onboarding; o front usa a
	// ausência do bloco "salon" para abrir o cadastro
	if profile.Role == models.RoleAdmin {
		var salon models.Salon
		if err := h.db.Where("owner_id = ?", profile.ID).First(&salon).Error; err == nil {
			resp["salon"] = salon
		}
	}

	c.JSON(http.StatusOK, resp)
}
