package review

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

type fakeReviewRepo struct {
	appointment *models.Appointment
	hasReview   bool
	created     []*models.Review
}

func (f *fakeReviewRepo) GetAppointment(_ context.Context, _ uint) (*models.Appointment, error) {
	if f.appointment == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.appointment, nil
}

func (f *fakeReviewRepo) HasReview(_ context.Context, _ uint) (bool, error) {
	return f.hasReview, nil
}

func (f *fakeReviewRepo) CreateReview(_ context.Context, r *models.Review) error {
	f.created = append(f.created, r)
	return nil
}

func completedAppointment() *models.Appointment {
	done := time.Now().Add(-time.Hour)
	return &models.Appointment{
		ID:          42,
		ClientID:    7,
		SalonID:     3,
		Status:      "completed",
		CompletedAt: &done,
	}
}

func TestCreateReview_Success(t *testing.T) {
	repo := &fakeReviewRepo{appointment: completedAppointment()}
	uc := NewCreateReview(repo)

	rv, err := uc.Execute(context.Background(), CreateReviewInput{
		ClientID:      7,
		AppointmentID: 42,
		Rating:        5,
		Comment:       "excelente corte",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), rv.SalonID)
	assert.Equal(t, 5, rv.Rating)
	assert.Len(t, repo.created, 1)
}

func TestCreateReview_RatingBounds(t *testing.T) {
	repo := &fakeReviewRepo{appointment: completedAppointment()}
	uc := NewCreateReview(repo)

	for _, rating := range []int{0, -1, 6} {
		_, err := uc.Execute(context.Background(), CreateReviewInput{
			ClientID:      7,
			AppointmentID: 42,
			Rating:        rating,
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_rating"), "rating %d", rating)
	}

	assert.Empty(t, repo.created)
}

func TestCreateReview_OnlyOwnClient(t *testing.T) {
	repo := &fakeReviewRepo{appointment: completedAppointment()}
	uc := NewCreateReview(repo)

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		ClientID:      99,
		AppointmentID: 42,
		Rating:        4,
	})

	assert.True(t, httperr.IsForbidden(err))
}

func TestCreateReview_RequiresCompleted(t *testing.T) {
	ap := completedAppointment()
	ap.Status = "confirmed"
	ap.CompletedAt = nil

	uc := NewCreateReview(&fakeReviewRepo{appointment: ap})

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		ClientID:      7,
		AppointmentID: 42,
		Rating:        4,
	})

	assert.True(t, httperr.IsBusiness(err, "appointment_not_completed"))
}

func TestCreateReview_OnePerAppointment(t *testing.T) {
	repo := &fakeReviewRepo{appointment: completedAppointment(), hasReview: true}
	uc := NewCreateReview(repo)

	_, err := uc.Execute(context.Background(), CreateReviewInput{
		ClientID:      7,
		AppointmentID: 42,
		Rating:        4,
	})

	assert.True(t, httperr.IsBusiness(err, "already_reviewed"))
	assert.Empty(t, repo.created)
}
