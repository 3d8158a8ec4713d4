package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/edsonbastos2/salon-agenda/internal/models"
	"github.com/edsonbastos2/salon-agenda/internal/usecase/review"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *ReviewGormRepository) HasReview(
	ctx context.Context,
	appointmentID uint,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error

	return count > 0, err
}

func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

var _ review.Repository = (*ReviewGormRepository)(nil)
