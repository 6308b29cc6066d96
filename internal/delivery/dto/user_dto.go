package dto

import (
	"time"

	"nextcare-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

// UpdateProfileRequest merges into the stored user. Nil members are left untouched.
type UpdateProfileRequest struct {
	Profile             *ProfileUpdate     `json:"profile"`
	MedicalInfo         *MedicalInfoUpdate `json:"medicalInfo"`
	Lifestyle           *LifestyleUpdate   `json:"lifestyle"`
	PreferredLanguage   *string            `json:"preferredLanguage" validate:"omitempty,min=2,max=10"`
	OnboardingCompleted *bool              `json:"onboardingCompleted"`
}

type ProfileUpdate struct {
	FirstName        *string                  `json:"firstName" validate:"omitempty,max=100"`
	LastName         *string                  `json:"lastName" validate:"omitempty,max=100"`
	DateOfBirth      *Timestamp               `json:"dateOfBirth"`
	Gender           *string                  `json:"gender" validate:"omitempty,max=20"`
	Phone            *string                  `json:"phone" validate:"omitempty,max=30"`
	Address          *AddressPayload          `json:"address"`
	EmergencyContact *EmergencyContactPayload `json:"emergencyContact"`
}

type AddressPayload struct {
	Street  string `json:"street" validate:"max=255"`
	City    string `json:"city" validate:"max=100"`
	State   string `json:"state" validate:"max=100"`
	ZipCode string `json:"zipCode" validate:"max=20"`
}

type EmergencyContactPayload struct {
	Name         string `json:"name" validate:"max=255"`
	Relationship string `json:"relationship" validate:"max=100"`
	Phone        string `json:"phone" validate:"max=30"`
}

type MedicalInfoUpdate struct {
	Conditions       []string                 `json:"conditions" validate:"omitempty,dive,max=255"`
	Allergies        []string                 `json:"allergies" validate:"omitempty,dive,max=255"`
	Medications      []string                 `json:"medications" validate:"omitempty,dive,max=255"`
	Hospitalizations []HospitalizationPayload `json:"hospitalizations" validate:"omitempty,dive"`
}

type HospitalizationPayload struct {
	Date     *Timestamp `json:"date"`
	Reason   string     `json:"reason" validate:"max=255"`
	Hospital string     `json:"hospital" validate:"max=255"`
	Duration int        `json:"duration" validate:"gte=0"`
}

type LifestyleUpdate struct {
	SmokingStatus      *string        `json:"smokingStatus" validate:"omitempty,max=20"`
	AlcoholConsumption *string        `json:"alcoholConsumption" validate:"omitempty,max=20"`
	ExerciseFrequency  *string        `json:"exerciseFrequency" validate:"omitempty,max=20"`
	DietType           *string        `json:"dietType" validate:"omitempty,max=50"`
	SleepHours         *OptionalFloat `json:"sleepHours"`
}

// Response DTOs

type UserResponse struct {
	ID                  uuid.UUID           `json:"_id"`
	Email               string              `json:"email"`
	Role                string              `json:"role"`
	Profile             ProfileResponse     `json:"profile"`
	MedicalInfo         MedicalInfoResponse `json:"medicalInfo"`
	Lifestyle           entity.Lifestyle    `json:"lifestyle"`
	RiskScore           int                 `json:"riskScore"`
	OnboardingCompleted bool                `json:"onboardingCompleted"`
	PreferredLanguage   string              `json:"preferredLanguage"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

type ProfileResponse struct {
	FirstName        string                   `json:"firstName"`
	LastName         string                   `json:"lastName"`
	DateOfBirth      *time.Time               `json:"dateOfBirth,omitempty"`
	Gender           string                   `json:"gender,omitempty"`
	Phone            string                   `json:"phone,omitempty"`
	Address          entity.Address           `json:"address"`
	EmergencyContact *entity.EmergencyContact `json:"emergencyContact,omitempty"`
}

type MedicalInfoResponse struct {
	Conditions       []string                 `json:"conditions"`
	Allergies        []string                 `json:"allergies"`
	Medications      []string                 `json:"medications"`
	Hospitalizations []entity.Hospitalization `json:"hospitalizations"`
}

// OwnerResponse summarises the owning user on admin listings.
type OwnerResponse struct {
	ID        uuid.UUID `json:"_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}
