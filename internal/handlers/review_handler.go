package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/middleware"
	ucReview "github.com/edsonbastos2/salon-agenda/internal/usecase/review"
)

type ReviewHandler struct {
	create *ucReview.CreateReview
}

func NewReviewHandler(create *ucReview.CreateReview) *ReviewHandler {
	return &ReviewHandler{create: create}
}

type CreateReviewRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextProfileID).(uint)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	rv, err := h.create.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		ClientID:      clientID,
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rv)
}
