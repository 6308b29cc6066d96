package database

import (
	"fmt"

	"nextcare-api/internal/domain/entity"

	"gorm.io/gorm"
)

// Models lists every table owned by the API, parents before children.
func Models() []interface{} {
	return []interface{}{
		&entity.User{},
		&entity.Appointment{},
		&entity.CarePlan{},
		&entity.Doctor{},
		&entity.HealthResource{},
		&entity.AuditLog{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
