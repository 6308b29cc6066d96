package repository

import (
	"nextcare-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthResourceRepository interface {
	Create(db *gorm.DB, resource *entity.HealthResource) error
	CreateBatch(db *gorm.DB, resources []entity.HealthResource) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.HealthResource, error)
	FindAll(db *gorm.DB, filter entity.HealthResourceFilter) ([]entity.HealthResource, error)
	Update(db *gorm.DB, resource *entity.HealthResource) error
	IncrementViews(db *gorm.DB, id uuid.UUID) (int64, error)
	IncrementLikes(db *gorm.DB, id uuid.UUID) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	DeleteAll(db *gorm.DB) error
}
