package review

import (
	"context"

	domain "github.com/edsonbastos2/salon-agenda/internal/domain/appointment"
	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

type Repository interface {
	GetAppointment(ctx context.Context, appointmentID uint) (*models.Appointment, error)
	HasReview(ctx context.Context, appointmentID uint) (bool, error)
	CreateReview(ctx context.Context, r *models.Review) error
}

type CreateReviewInput struct {
	ClientID      uint
	AppointmentID uint
	Rating        int
	Comment       string
}

// CreateReview só aceita avaliação do próprio cliente, uma por
// agendamento, e apenas depois do atendimento concluído
type CreateReview struct {
	repo Repository
}

func NewCreateReview(repo Repository) *CreateReview {
	return &CreateReview{repo: repo}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	in CreateReviewInput,
) (*models.Review, error) {

	if in.Rating < 1 || in.Rating > 5 {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if ap.ClientID != in.ClientID {
		return nil, httperr.ErrForbidden("not_appointment_client")
	}

	if domain.Status(ap.Status) != domain.StatusCompleted {
		return nil, httperr.ErrBusiness("appointment_not_completed")
	}

	exists, err := uc.repo.HasReview(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("already_reviewed")
	}

	rv := &models.Review{
		SalonID:       ap.SalonID,
		ClientID:      in.ClientID,
		AppointmentID: in.AppointmentID,
		Rating:        in.Rating,
		Comment:       in.Comment,
	}

	if err := uc.repo.CreateReview(ctx, rv); err != nil {
		return nil, err
	}

	return rv, nil
}
