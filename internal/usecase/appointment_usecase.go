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
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type AppointmentUsecase interface {
	GetMyAppointments(ctx context.Context, caller entity.Identity) ([]dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context, caller entity.Identity) ([]dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, caller entity.Identity, id uuid.UUID) (*dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, caller entity.Identity, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, caller entity.Identity, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, caller entity.Identity, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		auditService:    auditService,
	}
}

// GetMyAppointments is always scoped to the caller, admins included.
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context, caller entity.Identity) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByUserID(u.db.WithContext(ctx), caller.UserID)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context, caller entity.Identity) ([]dto.AppointmentResponse, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindAllWithOwner(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, caller entity.Identity, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findAuthorized(u.db.WithContext(ctx), caller, id)
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, caller entity.Identity, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := requireAccount(tx, u.userRepo, caller); err != nil {
		return nil, err
	}

	appointment := converter.CreateAppointmentRequestToEntity(req, caller.UserID)
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isForeignKeyError(err) {
			return nil, ErrNotAuthorized
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	response := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogCreate(ctx, tx, caller.UserID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), response); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, caller entity.Identity, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findAuthorized(tx, caller, id)
	if err != nil {
		return nil, err
	}

	// Capture old value for audit
	oldValue := converter.AppointmentToResponse(appointment)

	converter.MergeAppointment(appointment, req)
	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	newValue := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogUpdate(ctx, tx, caller.UserID, entity.AuditActionAppointmentUpdate, "appointment", id.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return newValue, nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, caller entity.Identity, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findAuthorized(tx, caller, id)
	if err != nil {
		return err
	}

	if _, err := u.appointmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, caller.UserID, entity.AuditActionAppointmentDelete, "appointment", id.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// findAuthorized loads the appointment and applies the owner-or-admin check.
// A missing record wins over a failed check.
func (u *appointmentUsecase) findAuthorized(db *gorm.DB, caller entity.Identity, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if err := authorizeOwner(caller, appointment.UserID); err != nil {
		return nil, err
	}
	return appointment, nil
}
