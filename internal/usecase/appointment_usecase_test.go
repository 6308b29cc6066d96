package usecase

import (
	"testing"
	"time"

	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/domain/entity"
	"nextcare-api/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentUsecase(f *fixture) AppointmentUsecase {
	return NewAppointmentUsecase(f.db, f.log, repository.NewAppointmentRepository(), repository.NewUserRepository(), f.audit)
}

func appointmentRequest(title string, at time.Time) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		Title:    title,
		Type:     string(entity.AppointmentTypeCheckup),
		DateTime: dto.Timestamp{Time: at},
	}
}

func TestAppointmentUsecase_CreateAppliesDefaultsAndAudits(t *testing.T) {
	f := newFixture(t)
	uc := newAppointmentUsecase(f)
	patient := f.createUser(t, "pat@example.com", entity.RolePatient)

	created, err := uc.CreateAppointment(f.ctx, patient, appointmentRequest("Checkup", time.Now().UTC().Add(24*time.Hour)))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, patient.UserID, created.UserID)
	assert.Equal(t, 30, created.Duration)
	assert.Equal(t, "clinic", created.Location.Type)
	assert.Equal(t, "scheduled", created.Status)
	assert.False(t, created.ReminderSent)
	assert.Equal(t, []string{entity.AuditActionAppointmentCreate}, f.auditActions(t))
}

func TestAppointmentUsecase_ListScopedToCallerAndSorted(t *testing.T) {
	f := newFixture(t)
	uc := newAppointmentUsecase(f)
	alice := f.createUser(t, "alice@example.com", entity.RolePatient)
	bob := f.createUser(t, "bob@example.com", entity.RolePatient)
	admin := f.createUser(t, "admin@example.com", entity.RoleAdmin)

	base := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	_, err := uc.CreateAppointment(f.ctx, alice, appointmentRequest("later", base.Add(48*time.Hour)))
	require.NoError(t, err)
	_, err = uc.CreateAppointment(f.ctx, alice, appointmentRequest("sooner", base))
	require.NoError(t, err)
	_, err = uc.CreateAppointment(f.ctx, bob, appointmentRequest("bob's", base.Add(time.Hour)))
	require.NoError(t, err)

	mine, err := uc.GetMyAppointments(f.ctx, alice)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "sooner", mine[0].Title)
	assert.Equal(t, "later", mine[1].Title)

	// Admins see only their own records on the personal list.
	adminOwn, err := uc.GetMyAppointments(f.ctx, admin)
	require.NoError(t, err)
	assert.Empty(t, adminOwn)
}

func TestAppointmentUsecase_GetAllRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	uc := newAppointmentUsecase(f)
	alice := f.createUser(t, "alice@example.com", entity.RolePatient)
	admin := f.createUser(t, "admin@example.com", entity.RoleAdmin)

	base := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)
	_, err := uc.CreateAppointment(f.ctx, alice, appointmentRequest("first", base))
	require.NoError(t, err)
	_, err = uc.CreateAppointment(f.ctx, alice, appointmentRequest("second", base.Add(time.Hour)))
	require.NoError(t, err)

	_, err = uc.GetAllAppointments(f.ctx, alice)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	all, err := uc.GetAllAppointments(f.ctx, admin)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Title)
	require.NotNil(t, all[0].User)
	assert.Equal(t, "alice@example.com", all[0].User.Email)
}

func TestAppointmentUsecase_NonOwnerIsRejectedAndRecordUnchanged(t *testing.T) {
	f := newFixture(t)
	uc := newAppointmentUsecase(f)
	owner := f.createUser(t, "owner@example.com", entity.RolePatient)
	intruder := f.createUser(t, "intruder@example.com", entity.RoleHealthcareProvider)

	created, err := uc.CreateAppointment(f.ctx, owner, appointmentRequest("Private", time.Date(2030, 2, 1, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	_, err = uc.GetAppointment(f.ctx, intruder, created.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = uc.UpdateAppointment(f.ctx, intruder, created.ID, &dto.UpdateAppointmentRequest{Title: ptr("Hijacked")})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	err = uc.DeleteAppointment(f.ctx, intruder, created.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	stored, err := uc.GetAppointment(f.ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Private", stored.Title)
	assert.Equal(t, []string{entity.AuditActionAppointmentCreate}, f.auditActions(t))
}

func TestAppointmentUsecase_MissingIsNotFoundForEveryone(t *testing.T) {
	f := newFixture(t)
	uc := newAppointmentUsecase(f)
	patient := f.createUser(t, "pat@example.com", entity.RolePatient)
	admin := f.createUser(t, "admin@example.com", entity.RoleAdmin)

	for _, caller := range []entity.Identity{patient, admin} {
		_, err := uc.GetAppointment(f.ctx, caller, uuid.New())
		assert.ErrorIs(t, err, ErrAppointmentNotFound)

		err = uc.DeleteAppointment(f.ctx, caller, uuid.New())
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	}
}

func TestAppointmentUsecase_AdminCanManageAnyRecord(t *testing.T) {
	f := newFixture(t)
	uc := newAppointmentUsecase(f)
	owner := f.createUser(t, "owner@example.com", entity.RolePatient)
	admin := f.createUser(t, "admin@example.com", entity.RoleAdmin)

	created, err := uc.CreateAppointment(f.ctx, owner, appointmentRequest("Review", time.Date(2030, 3, 1, 8, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	updated, err := uc.UpdateAppointment(f.ctx, admin, created.ID, &dto.UpdateAppointmentRequest{Status: ptr("cancelled")})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", updated.Status)
	assert.Equal(t, "Review", updated.Title)
	assert.Equal(t, owner.UserID, updated.UserID)

	require.NoError(t, uc.DeleteAppointment(f.ctx, admin, created.ID))

	_, err = uc.GetAppointment(f.ctx, owner, created.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Equal(t, []string{
		entity.AuditActionAppointmentDelete,
		entity.AuditActionAppointmentUpdate,
		entity.AuditActionAppointmentCreate,
	}, f.auditActions(t))
}

func TestAppointmentUsecase_CreateRejectsDeletedAccount(t *testing.T) {
	f := newFixture(t)
	uc := newAppointmentUsecase(f)
	patient := f.createUser(t, "gone@example.com", entity.RolePatient)

	_, err := repository.NewUserRepository().Delete(f.db, patient.UserID)
	require.NoError(t, err)

	_, err = uc.CreateAppointment(f.ctx, patient, appointmentRequest("Checkup", time.Now().UTC().Add(time.Hour)))
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.Empty(t, f.auditActions(t))
}
