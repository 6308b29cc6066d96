package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/domain/entity"
	"nextcare-api/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCarePlanUsecase(f *fixture) CarePlanUsecase {
	return NewCarePlanUsecase(f.db, f.log, repository.NewCarePlanRepository(), repository.NewUserRepository(), f.audit)
}

func TestCarePlanUsecase_CreateDefaults(t *testing.T) {
	f := newFixture(t)
	uc := newCarePlanUsecase(f)
	patient := f.createUser(t, "pat@example.com", entity.RolePatient)

	plan, err := uc.CreateCarePlan(f.ctx, patient, &dto.CreateCarePlanRequest{
		Title:     "Cardiac rehab",
		StartDate: dto.Timestamp{Time: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
		Goals:     []dto.GoalPayload{{Title: "Walk 30 minutes"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "active", plan.Status)
	assert.Equal(t, 0, plan.Progress)
	assert.Equal(t, patient.UserID, plan.UserID)
	require.Len(t, plan.Goals, 1)
	assert.Empty(t, plan.Tasks)
	assert.NotNil(t, plan.Tasks)
}

func TestCarePlanUsecase_PartialUpdateKeepsOtherFields(t *testing.T) {
	f := newFixture(t)
	uc := newCarePlanUsecase(f)
	patient := f.createUser(t, "pat@example.com", entity.RolePatient)

	plan, err := uc.CreateCarePlan(f.ctx, patient, &dto.CreateCarePlanRequest{
		Title:       "Diabetes control",
		Description: "Quarterly plan",
		StartDate:   dto.Timestamp{Time: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
		Medications: []dto.PrescriptionPayload{{Name: "Metformin", Dosage: "500mg"}},
	})
	require.NoError(t, err)

	var req dto.UpdateCarePlanRequest
	require.NoError(t, json.Unmarshal([]byte(`{"progress": 50, "status": "paused"}`), &req))

	updated, err := uc.UpdateCarePlan(f.ctx, patient, plan.ID, &req)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Progress)
	assert.Equal(t, "paused", updated.Status)

	stored, err := uc.GetCarePlan(f.ctx, patient, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "Diabetes control", stored.Title)
	assert.Equal(t, "Quarterly plan", stored.Description)
	assert.Equal(t, 50, stored.Progress)
	require.Len(t, stored.Medications, 1)
	assert.Equal(t, "Metformin", stored.Medications[0].Name)
}

func TestCarePlanUsecase_OwnershipAndListing(t *testing.T) {
	f := newFixture(t)
	uc := newCarePlanUsecase(f)
	owner := f.createUser(t, "owner@example.com", entity.RolePatient)
	other := f.createUser(t, "other@example.com", entity.RolePatient)
	admin := f.createUser(t, "admin@example.com", entity.RoleAdmin)

	plan, err := uc.CreateCarePlan(f.ctx, owner, &dto.CreateCarePlanRequest{
		Title:     "Sleep plan",
		StartDate: dto.Timestamp{Time: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)

	_, err = uc.GetCarePlan(f.ctx, other, plan.ID)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.ErrorIs(t, uc.DeleteCarePlan(f.ctx, other, plan.ID), ErrNotAuthorized)

	_, err = uc.GetCarePlan(f.ctx, other, uuid.New())
	assert.ErrorIs(t, err, ErrCarePlanNotFound)

	othersPlans, err := uc.GetMyCarePlans(f.ctx, other)
	require.NoError(t, err)
	assert.Empty(t, othersPlans)

	_, err = uc.GetAllCarePlans(f.ctx, owner)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	all, err := uc.GetAllCarePlans(f.ctx, admin)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].User)
	assert.Equal(t, "owner@example.com", all[0].User.Email)

	require.NoError(t, uc.DeleteCarePlan(f.ctx, admin, plan.ID))
	mine, err := uc.GetMyCarePlans(f.ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestCarePlanUsecase_CreateRejectsDeletedAccount(t *testing.T) {
	f := newFixture(t)
	uc := newCarePlanUsecase(f)
	patient := f.createUser(t, "gone@example.com", entity.RolePatient)

	_, err := repository.NewUserRepository().Delete(f.db, patient.UserID)
	require.NoError(t, err)

	_, err = uc.CreateCarePlan(f.ctx, patient, &dto.CreateCarePlanRequest{
		Title:     "Cardiac rehab",
		StartDate: dto.Timestamp{Time: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
	})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}
