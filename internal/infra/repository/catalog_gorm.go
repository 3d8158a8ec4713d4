package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/edsonbastos2/salon-agenda/internal/domain/catalog"
	"github.com/edsonbastos2/salon-agenda/internal/httperr"
	"github.com/edsonbastos2/salon-agenda/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *CatalogGormRepository) ListActiveServices(
	ctx context.Context,
	salonID uint,
	newestFirst bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true", salonID)

	if newestFirst {
		q = q.Order("created_at DESC")
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

func (r *CatalogGormRepository) ListActiveProfessionals(
	ctx context.Context,
	salonID uint,
) ([]models.Professional, error) {

	var pros []models.Professional
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true", salonID).
		Find(&pros).Error; err != nil {
		return nil, err
	}

	return pros, nil
}

// --------------------------------------------------
// Deletion guard
// --------------------------------------------------

func referenceColumn(entity string) string {
	if entity == catalog.EntityProfessional {
		return "professional_id"
	}
	return "service_id"
}

func entityModel(entity string) any {
	if entity == catalog.EntityProfessional {
		return &models.Professional{}
	}
	return &models.Service{}
}

func (r *CatalogGormRepository) CountAppointmentReferences(
	ctx context.Context,
	entity string,
	entityID uint,
) (int64, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(referenceColumn(entity)+" = ?", entityID).
		Count(&count).Error

	return count, err
}

func (r *CatalogGormRepository) DeleteIfUnreferenced(
	ctx context.Context,
	entity string,
	entityID uint,
	salonID uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// lock nas referências para impedir agendamento novo entre
		// a contagem e o delete
		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(referenceColumn(entity)+" = ?", entityID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrReferentialConflict(entity, count)
		}

		result := tx.
			Where("id = ? AND salon_id = ?", entityID, salonID).
			Delete(entityModel(entity))

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

func (r *CatalogGormRepository) Deactivate(
	ctx context.Context,
	entity string,
	entityID uint,
	salonID uint,
) error {

	result := r.db.WithContext(ctx).
		Model(entityModel(entity)).
		Where("id = ? AND salon_id = ?", entityID, salonID).
		Update("active", false)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Compile-time check
var _ catalog.Repository = (*CatalogGormRepository)(nil)
