package converter

import (
	"encoding/json"
	"testing"
	"time"

	"nextcare-api/internal/delivery/dto"
	"nextcare-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode[T any](t *testing.T, body string) *T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return &v
}

func TestMergeUser_OnlyProvidedKeysChange(t *testing.T) {
	sleep := 8.0
	user := &entity.User{
		Profile: entity.Profile{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Phone:     "555-0100",
			Address:   entity.Address{Street: "1 Main", City: "Springfield"},
		},
		MedicalInfo: entity.MedicalInfo{Allergies: []string{"peanuts"}},
		Lifestyle:   entity.Lifestyle{SmokingStatus: "never", SleepHours: &sleep},
	}

	req := decode[dto.UpdateProfileRequest](t, `{
		"profile": {"lastName": "King", "address": {"city": "Shelbyville"}},
		"medicalInfo": {"conditions": ["asthma"]},
		"lifestyle": {"smokingStatus": "former"},
		"onboardingCompleted": true
	}`)
	MergeUser(user, req)

	assert.Equal(t, "Ada", user.Profile.FirstName)
	assert.Equal(t, "King", user.Profile.LastName)
	assert.Equal(t, "555-0100", user.Profile.Phone)
	assert.Equal(t, entity.Address{City: "Shelbyville"}, user.Profile.Address)
	assert.Equal(t, []string{"asthma"}, []string(user.MedicalInfo.Conditions))
	assert.Equal(t, []string{"peanuts"}, []string(user.MedicalInfo.Allergies))
	assert.Equal(t, "former", user.Lifestyle.SmokingStatus)
	require.NotNil(t, user.Lifestyle.SleepHours)
	assert.Equal(t, 8.0, *user.Lifestyle.SleepHours)
	assert.True(t, user.OnboardingCompleted)
}

func TestMergeUser_SleepHoursFromString(t *testing.T) {
	user := &entity.User{}

	MergeUser(user, decode[dto.UpdateProfileRequest](t, `{"lifestyle": {"sleepHours": "6.5"}}`))
	require.NotNil(t, user.Lifestyle.SleepHours)
	assert.Equal(t, 6.5, *user.Lifestyle.SleepHours)

	MergeUser(user, decode[dto.UpdateProfileRequest](t, `{"lifestyle": {"sleepHours": ""}}`))
	assert.Nil(t, user.Lifestyle.SleepHours)
}

func TestMergeAppointment_PartialUpdate(t *testing.T) {
	owner := uuid.New()
	when := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	appointment := &entity.Appointment{
		UserID:   owner,
		Title:    "Annual checkup",
		Type:     entity.AppointmentTypeCheckup,
		DateTime: when,
		Duration: 30,
		Status:   entity.AppointmentStatusScheduled,
		Notes:    "fasting",
	}

	MergeAppointment(appointment, decode[dto.UpdateAppointmentRequest](t, `{"status": "completed", "duration": 45}`))

	assert.Equal(t, owner, appointment.UserID)
	assert.Equal(t, "Annual checkup", appointment.Title)
	assert.Equal(t, entity.AppointmentStatusCompleted, appointment.Status)
	assert.Equal(t, 45, appointment.Duration)
	assert.Equal(t, when, appointment.DateTime)
	assert.Equal(t, "fasting", appointment.Notes)
}

func TestCreateAppointmentRequestToEntity_Defaults(t *testing.T) {
	owner := uuid.New()
	req := decode[dto.CreateAppointmentRequest](t, `{"title": "Therapy", "type": "therapy", "dateTime": "2025-04-02T14:30"}`)

	appointment := CreateAppointmentRequestToEntity(req, owner)

	assert.Equal(t, owner, appointment.UserID)
	assert.Equal(t, entity.DefaultAppointmentDuration, appointment.Duration)
	assert.Equal(t, entity.DefaultLocationType, appointment.Location.Type)
	assert.Equal(t, entity.AppointmentStatusScheduled, appointment.Status)
	assert.False(t, appointment.ReminderSent)
	assert.Equal(t, time.Date(2025, 4, 2, 14, 30, 0, 0, time.UTC), appointment.DateTime)
}

func TestMergeCarePlan_ListsReplacedAndEndDateCleared(t *testing.T) {
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	plan := &entity.CarePlan{
		Title:    "Recovery",
		Status:   entity.CarePlanStatusActive,
		EndDate:  &end,
		Goals:    []entity.Goal{{Title: "Walk daily"}},
		Progress: 10,
	}

	MergeCarePlan(plan, decode[dto.UpdateCarePlanRequest](t, `{"progress": 50, "endDate": "", "tasks": [{"title": "Stretch"}]}`))

	assert.Equal(t, "Recovery", plan.Title)
	assert.Equal(t, 50, plan.Progress)
	assert.Nil(t, plan.EndDate)
	assert.Len(t, plan.Goals, 1)
	require.Len(t, plan.Tasks, 1)
	assert.Equal(t, "Stretch", plan.Tasks[0].Title)
}

func TestMergeHealthResource_CountersUntouched(t *testing.T) {
	resource := &entity.HealthResource{Title: "Sleep hygiene", Views: 12, Likes: 3}

	MergeHealthResource(resource, decode[dto.UpdateHealthResourceRequest](t, `{"title": "Better sleep", "featured": true}`))

	assert.Equal(t, "Better sleep", resource.Title)
	assert.True(t, resource.Featured)
	assert.Equal(t, int64(12), resource.Views)
	assert.Equal(t, int64(3), resource.Likes)
}

func TestUserToResponse_EmptyListsAndNoPassword(t *testing.T) {
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Email:    "ada@example.com",
		Password: "hash",
		Role:     entity.RolePatient,
	}

	raw, err := json.Marshal(UserToResponse(user))
	require.NoError(t, err)

	body := string(raw)
	assert.NotContains(t, body, "hash")
	assert.NotContains(t, body, "password")
	assert.Contains(t, body, `"conditions":[]`)
	assert.NotContains(t, body, "emergencyContact")
}

func TestDoctorToResponse_NilSafe(t *testing.T) {
	assert.Nil(t, DoctorToResponse(nil))
	assert.Empty(t, DoctorsToResponses(nil))
}
