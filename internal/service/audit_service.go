package service

import (
	"context"

	"nextcare-api/internal/domain/entity"
	"nextcare-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const auditSavePoint = "audit_log"

// AuditService writes audit rows inside the caller's transaction.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, actor uuid.UUID, action, entityName, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, actor uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, actor uuid.UUID, action, entityName, entityID string, oldValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, actor uuid.UUID, action, entityName, entityID string, newValue interface{}) error {
	return s.write(tx, actor, action, entityName, entityID, nil, newValue)
}

func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, actor uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	return s.write(tx, actor, action, entityName, entityID, oldValue, newValue)
}

func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, actor uuid.UUID, action, entityName, entityID string, oldValue interface{}) error {
	return s.write(tx, actor, action, entityName, entityID, oldValue, nil)
}

func (s *auditService) write(tx *gorm.DB, actor uuid.UUID, action, entityName, entityID string, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		Action: action,
		Metadata: datatypes.JSONMap{
			"entity":    entityName,
			"entity_id": entityID,
			"old_value": oldValue,
			"new_value": newValue,
		},
	}
	if actor != uuid.Nil {
		auditLog.UserID = &actor
	}

	// A failed insert must not poison the surrounding transaction.
	if err := tx.SavePoint(auditSavePoint).Error; err != nil {
		s.log.Warnf("Failed to set audit savepoint: %+v", err)
		return err
	}
	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		tx.RollbackTo(auditSavePoint)
		return err
	}

	return nil
}
