package notify

import (
	"context"

	"gorm.io/gorm"

	"github.com/edsonbastos2/salon-agenda/internal/models"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) SaveNotification(ctx context.Context, n *models.Notification) error {
	return s.db.WithContext(ctx).Create(n).Error
}

func (s *GormStore) SalonOwnerID(ctx context.Context, salonID uint) (uint, error) {
	var salon models.Salon
	if err := s.db.WithContext(ctx).
		Select("owner_id").
		First(&salon, salonID).Error; err != nil {
		return 0, err
	}
	return salon.OwnerID, nil
}

var _ Store = (*GormStore)(nil)
