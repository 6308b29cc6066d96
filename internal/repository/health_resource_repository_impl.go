package repository

import (
	"errors"

	"nextcare-api/internal/domain/entity"
	domainRepo "nextcare-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type healthResourceRepository struct{}

func NewHealthResourceRepository() domainRepo.HealthResourceRepository {
	return &healthResourceRepository{}
}

func (r *healthResourceRepository) Create(db *gorm.DB, resource *entity.HealthResource) error {
	return db.Create(resource).Error
}

func (r *healthResourceRepository) CreateBatch(db *gorm.DB, resources []entity.HealthResource) error {
	if len(resources) == 0 {
		return nil
	}
	return db.Create(&resources).Error
}

func (r *healthResourceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.HealthResource, error) {
	var resource entity.HealthResource
	err := db.Where("id = ?", id).First(&resource).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resource, nil
}

// FindAll filters category and featured in SQL. Tags live in a JSON column whose
// operators differ between dialects, so they are matched after the query.
func (r *healthResourceRepository) FindAll(db *gorm.DB, filter entity.HealthResourceFilter) ([]entity.HealthResource, error) {
	query := db.Model(&entity.HealthResource{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	var resources []entity.HealthResource
	if err := query.Order("created_at DESC").Find(&resources).Error; err != nil {
		return nil, err
	}

	if len(filter.Tags) == 0 {
		return resources, nil
	}
	matched := make([]entity.HealthResource, 0, len(resources))
	for i := range resources {
		if resources[i].HasAnyTag(filter.Tags) {
			matched = append(matched, resources[i])
		}
	}
	return matched, nil
}

func (r *healthResourceRepository) Update(db *gorm.DB, resource *entity.HealthResource) error {
	return db.Save(resource).Error
}

// IncrementViews bumps the counter in place; concurrent reads never overwrite each other.
func (r *healthResourceRepository) IncrementViews(db *gorm.DB, id uuid.UUID) (int64, error) {
	return r.increment(db, id, "views")
}

func (r *healthResourceRepository) IncrementLikes(db *gorm.DB, id uuid.UUID) (int64, error) {
	return r.increment(db, id, "likes")
}

func (r *healthResourceRepository) increment(db *gorm.DB, id uuid.UUID, column string) (int64, error) {
	result := db.Model(&entity.HealthResource{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	return result.RowsAffected, result.Error
}

func (r *healthResourceRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.HealthResource{})
	return result.RowsAffected, result.Error
}

func (r *healthResourceRepository) DeleteAll(db *gorm.DB) error {
	return db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.HealthResource{}).Error
}
