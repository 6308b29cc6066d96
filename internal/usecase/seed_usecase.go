package usecase

import (
	"context"

	"nextcare-api/internal/domain/entity"
	"nextcare-api/internal/domain/repository"
	"nextcare-api/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DefaultAdminEmail    = "admin@nextcare.com"
	DefaultAdminPassword = "Admin@123"
)

type SeedResult struct {
	HealthResources int
	Doctors         int
}

// SeedUsecase backs the operator commands that bootstrap a fresh database.
type SeedUsecase interface {
	// CreateAdmin reports false when an account with email already exists.
	CreateAdmin(ctx context.Context, email, password string) (bool, error)
	// SeedCatalog replaces every doctor and health resource with the sample set.
	SeedCatalog(ctx context.Context) (*SeedResult, error)
}

type seedUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	doctorRepo   repository.DoctorRepository
	resourceRepo repository.HealthResourceRepository
	cache        *service.CatalogCache
}

func NewSeedUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	resourceRepo repository.HealthResourceRepository,
	cache *service.CatalogCache,
) SeedUsecase {
	return &seedUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		doctorRepo:   doctorRepo,
		resourceRepo: resourceRepo,
		cache:        cache,
	}
}

func (u *seedUsecase) CreateAdmin(ctx context.Context, email, password string) (bool, error) {
	email = normalizeEmail(email)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.userRepo.FindByEmail(tx, email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return false, err
	}

	admin := &entity.User{
		Email:    email,
		Password: string(hashedPassword),
		Role:     entity.RoleAdmin,
		Profile: entity.Profile{
			FirstName: "Admin",
			LastName:  "User",
		},
		OnboardingCompleted: true,
		PreferredLanguage:   DefaultPreferredLanguage,
	}
	admin.RecalculateRiskScore()

	if err := u.userRepo.Create(tx, admin); err != nil {
		if isDuplicateKeyError(err, "email") {
			return false, nil
		}
		u.log.Warnf("Failed to create admin: %+v", err)
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return false, err
	}

	return true, nil
}

func (u *seedUsecase) SeedCatalog(ctx context.Context) (*SeedResult, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.resourceRepo.DeleteAll(tx); err != nil {
		u.log.Warnf("Failed to clear health resources: %+v", err)
		return nil, err
	}
	if err := u.doctorRepo.DeleteAll(tx); err != nil {
		u.log.Warnf("Failed to clear doctors: %+v", err)
		return nil, err
	}

	resources := sampleHealthResources()
	if err := u.resourceRepo.CreateBatch(tx, resources); err != nil {
		u.log.Warnf("Failed to seed health resources: %+v", err)
		return nil, err
	}
	doctors := sampleDoctors()
	if err := u.doctorRepo.CreateBatch(tx, doctors); err != nil {
		u.log.Warnf("Failed to seed doctors: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.cache.InvalidateDoctors(ctx)

	return &SeedResult{
		HealthResources: len(resources),
		Doctors:         len(doctors),
	}, nil
}
