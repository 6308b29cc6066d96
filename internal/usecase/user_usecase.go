package usecase

import (
	"context"

	"nextcare-api/internal/converter"
	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/domain/entity"
	"nextcare-api/internal/domain/repository"
	"nextcare-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, caller entity.Identity) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, caller entity.Identity, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context, caller entity.Identity) ([]dto.UserResponse, error)
	DeleteUser(ctx context.Context, caller entity.Identity, userID uuid.UUID) error
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (u *userUsecase) GetProfile(ctx context.Context, caller entity.Identity) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), caller.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// UpdateProfile merges the request into the caller's record and recomputes the
// risk score from the merged intake.
func (u *userUsecase) UpdateProfile(ctx context.Context, caller entity.Identity, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, caller.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Capture old value for audit
	oldValue := converter.UserToResponse(user)

	converter.MergeUser(user, req)
	user.RecalculateRiskScore()

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	newValue := converter.UserToResponse(user)
	if err := u.auditService.LogUpdate(ctx, tx, caller.UserID, entity.AuditActionProfileUpdate, "user", user.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *userUsecase) GetAllUsers(ctx context.Context, caller entity.Identity) ([]dto.UserResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	return converter.UsersToResponses(users), nil
}

// DeleteUser removes the account; its appointments and care plans go with it
// through the foreign key cascade.
func (u *userUsecase) DeleteUser(ctx context.Context, caller entity.Identity, userID uuid.UUID) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if _, err := u.userRepo.Delete(tx, userID); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, caller.UserID, entity.AuditActionUserDelete, "user", userID.String(), converter.UserToOwner(user)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
