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
	ErrCarePlanNotFound = errors.New("care plan not found")
)

type CarePlanUsecase interface {
	GetMyCarePlans(ctx context.Context, caller entity.Identity) ([]dto.CarePlanResponse, error)
	GetAllCarePlans(ctx context.Context, caller entity.Identity) ([]dto.CarePlanResponse, error)
	GetCarePlan(ctx context.Context, caller entity.Identity, id uuid.UUID) (*dto.CarePlanResponse, error)
	CreateCarePlan(ctx context.Context, caller entity.Identity, req *dto.CreateCarePlanRequest) (*dto.CarePlanResponse, error)
	UpdateCarePlan(ctx context.Context, caller entity.Identity, id uuid.UUID, req *dto.UpdateCarePlanRequest) (*dto.CarePlanResponse, error)
	DeleteCarePlan(ctx context.Context, caller entity.Identity, id uuid.UUID) error
}

type carePlanUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	carePlanRepo repository.CarePlanRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewCarePlanUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	carePlanRepo repository.CarePlanRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) CarePlanUsecase {
	return &carePlanUsecase{
		db:           db,
		log:          log,
		carePlanRepo: carePlanRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *carePlanUsecase) GetMyCarePlans(ctx context.Context, caller entity.Identity) ([]dto.CarePlanResponse, error) {
	plans, err := u.carePlanRepo.FindByUserID(u.db.WithContext(ctx), caller.UserID)
	if err != nil {
		u.log.Warnf("Failed to find care plans: %+v", err)
		return nil, err
	}

	return converter.CarePlansToResponses(plans), nil
}

func (u *carePlanUsecase) GetAllCarePlans(ctx context.Context, caller entity.Identity) ([]dto.CarePlanResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	plans, err := u.carePlanRepo.FindAllWithOwner(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all care plans: %+v", err)
		return nil, err
	}

	return converter.CarePlansToResponses(plans), nil
}

func (u *carePlanUsecase) GetCarePlan(ctx context.Context, caller entity.Identity, id uuid.UUID) (*dto.CarePlanResponse, error) {
	plan, err := u.findAuthorized(u.db.WithContext(ctx), caller, id)
	if err != nil {
		return nil, err
	}

	return converter.CarePlanToResponse(plan), nil
}

func (u *carePlanUsecase) CreateCarePlan(ctx context.Context, caller entity.Identity, req *dto.CreateCarePlanRequest) (*dto.CarePlanResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := requireAccount(tx, u.userRepo, caller); err != nil {
		return nil, err
	}

	plan := converter.CreateCarePlanRequestToEntity(req, caller.UserID)
	if err := u.carePlanRepo.Create(tx, plan); err != nil {
		if isForeignKeyError(err) {
			return nil, ErrNotAuthorized
		}
		u.log.Warnf("Failed to create care plan: %+v", err)
		return nil, err
	}

	response := converter.CarePlanToResponse(plan)
	if err := u.auditService.LogCreate(ctx, tx, caller.UserID, entity.AuditActionCarePlanCreate, "care_plan", plan.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *carePlanUsecase) UpdateCarePlan(ctx context.Context, caller entity.Identity, id uuid.UUID, req *dto.UpdateCarePlanRequest) (*dto.CarePlanResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	plan, err := u.findAuthorized(tx, caller, id)
	if err != nil {
		return nil, err
	}

	oldValue := converter.CarePlanToResponse(plan)

	converter.MergeCarePlan(plan, req)
	if err := u.carePlanRepo.Update(tx, plan); err != nil {
		u.log.Warnf("Failed to update care plan: %+v", err)
		return nil, err
	}

	newValue := converter.CarePlanToResponse(plan)
	if err := u.auditService.LogUpdate(ctx, tx, caller.UserID, entity.AuditActionCarePlanUpdate, "care_plan", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *carePlanUsecase) DeleteCarePlan(ctx context.Context, caller entity.Identity, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	plan, err := u.findAuthorized(tx, caller, id)
	if err != nil {
		return err
	}

	if _, err := u.carePlanRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete care plan: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, caller.UserID, entity.AuditActionCarePlanDelete, "care_plan", id.String(), converter.CarePlanToResponse(plan)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *carePlanUsecase) findAuthorized(db *gorm.DB, caller entity.Identity, id uuid.UUID) (*entity.CarePlan, error) {
	plan, err := u.carePlanRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find care plan: %+v", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrCarePlanNotFound
	}
	if err := authorizeOwner(caller, plan.UserID); err != nil {
		return nil, err
	}
	return plan, nil
}
