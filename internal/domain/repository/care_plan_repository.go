package repository

import (
	"nextcare-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CarePlanRepository interface {
	Create(db *gorm.DB, plan *entity.CarePlan) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.CarePlan, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.CarePlan, error)
	FindAllWithOwner(db *gorm.DB) ([]entity.CarePlan, error)
	Update(db *gorm.DB, plan *entity.CarePlan) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
