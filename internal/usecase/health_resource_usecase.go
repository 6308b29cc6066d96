package usecase

import (
	"context"
	"errors"

	"nextcare-api/internal/converter"
	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/domain/entity"
	"nextcare-api/internal/domain/repository"
	"nextcare-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrHealthResourceNotFound = errors.New("health resource not found")
)

type HealthResourceUsecase interface {
	GetAllHealthResources(ctx context.Context, filter entity.HealthResourceFilter) ([]dto.HealthResourceResponse, error)
	GetHealthResource(ctx context.Context, id uuid.UUID) (*dto.HealthResourceResponse, error)
	LikeHealthResource(ctx context.Context, id uuid.UUID) (*dto.HealthResourceResponse, error)
	CreateHealthResource(ctx context.Context, caller entity.Identity, req *dto.CreateHealthResourceRequest) (*dto.HealthResourceResponse, error)
	UpdateHealthResource(ctx context.Context, caller entity.Identity, id uuid.UUID, req *dto.UpdateHealthResourceRequest) (*dto.HealthResourceResponse, error)
	DeleteHealthResource(ctx context.Context, caller entity.Identity, id uuid.UUID) error
}

type healthResourceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	resourceRepo repository.HealthResourceRepository
	auditService service.AuditService
}

func NewHealthResourceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	resourceRepo repository.HealthResourceRepository,
	auditService service.AuditService,
) HealthResourceUsecase {
	return &healthResourceUsecase{
		db:           db,
		log:          log,
		resourceRepo: resourceRepo,
		auditService: auditService,
	}
}

func (u *healthResourceUsecase) GetAllHealthResources(ctx context.Context, filter entity.HealthResourceFilter) ([]dto.HealthResourceResponse, error) {
	resources, err := u.resourceRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find health resources: %+v", err)
		return nil, err
	}

	return converter.HealthResourcesToResponses(resources), nil
}

// GetHealthResource counts every read as one view, with no deduplication.
func (u *healthResourceUsecase) GetHealthResource(ctx context.Context, id uuid.UUID) (*dto.HealthResourceResponse, error) {
	return u.bumpAndLoad(ctx, id, u.resourceRepo.IncrementViews)
}

func (u *healthResourceUsecase) LikeHealthResource(ctx context.Context, id uuid.UUID) (*dto.HealthResourceResponse, error) {
	return u.bumpAndLoad(ctx, id, u.resourceRepo.IncrementLikes)
}

func (u *healthResourceUsecase) bumpAndLoad(ctx context.Context, id uuid.UUID, increment func(*gorm.DB, uuid.UUID) (int64, error)) (*dto.HealthResourceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := increment(tx, id)
	if err != nil {
		u.log.Warnf("Failed to increment health resource counter: %+v", err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrHealthResourceNotFound
	}

	resource, err := u.resourceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find health resource: %+v", err)
		return nil, err
	}
	if resource == nil {
		return nil, ErrHealthResourceNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HealthResourceToResponse(resource), nil
}

func (u *healthResourceUsecase) CreateHealthResource(ctx context.Context, caller entity.Identity, req *dto.CreateHealthResourceRequest) (*dto.HealthResourceResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	resource := converter.CreateHealthResourceRequestToEntity(req)
	if err := u.resourceRepo.Create(tx, resource); err != nil {
		u.log.Warnf("Failed to create health resource: %+v", err)
		return nil, err
	}

	response := converter.HealthResourceToResponse(resource)
	if err := u.auditService.LogCreate(ctx, tx, caller.UserID, entity.AuditActionResourceCreate, "health_resource", resource.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *healthResourceUsecase) UpdateHealthResource(ctx context.Context, caller entity.Identity, id uuid.UUID, req *dto.UpdateHealthResourceRequest) (*dto.HealthResourceResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	resource, err := u.resourceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find health resource: %+v", err)
		return nil, err
	}
	if resource == nil {
		return nil, ErrHealthResourceNotFound
	}

	oldValue := converter.HealthResourceToResponse(resource)

	converter.MergeHealthResource(resource, req)
	if err := u.resourceRepo.Update(tx, resource); err != nil {
		u.log.Warnf("Failed to update health resource: %+v", err)
		return nil, err
	}

	newValue := converter.HealthResourceToResponse(resource)
	if err := u.auditService.LogUpdate(ctx, tx, caller.UserID, entity.AuditActionResourceUpdate, "health_resource", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *healthResourceUsecase) DeleteHealthResource(ctx context.Context, caller entity.Identity, id uuid.UUID) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	resource, err := u.resourceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find health resource: %+v", err)
		return err
	}
	if resource == nil {
		return ErrHealthResourceNotFound
	}

	if _, err := u.resourceRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete health resource: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, caller.UserID, entity.AuditActionResourceDelete, "health_resource", id.String(), converter.HealthResourceToResponse(resource)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
