package repository

import (
	"errors"

	"nextcare-api/internal/domain/entity"
	domainRepo "nextcare-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type carePlanRepository struct{}

func NewCarePlanRepository() domainRepo.CarePlanRepository {
	return &carePlanRepository{}
}

func (r *carePlanRepository) Create(db *gorm.DB, plan *entity.CarePlan) error {
	return db.Omit("User").Create(plan).Error
}

func (r *carePlanRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.CarePlan, error) {
	var plan entity.CarePlan
	err := db.Where("id = ?", id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *carePlanRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.CarePlan, error) {
	var plans []entity.CarePlan
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// FindAllWithOwner returns every care plan, newest first, with its owner preloaded.
func (r *carePlanRepository) FindAllWithOwner(db *gorm.DB) ([]entity.CarePlan, error) {
	var plans []entity.CarePlan
	err := db.Preload("User").
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *carePlanRepository) Update(db *gorm.DB, plan *entity.CarePlan) error {
	return db.Omit("User").Save(plan).Error
}

func (r *carePlanRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.CarePlan{})
	return result.RowsAffected, result.Error
}
