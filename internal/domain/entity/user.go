package entity

import (
	"time"

	"nextcare-api/pkg/riskscore"

	"gorm.io/datatypes"
)

// User is a portal account together with its onboarding intake.
type User struct {
	Base
	Email               string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password            string      `gorm:"type:text;not null" json:"-"`
	Role                Role        `gorm:"type:varchar(32);not null;index" json:"role"`
	Profile             Profile     `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	MedicalInfo         MedicalInfo `gorm:"embedded;embeddedPrefix:medical_" json:"medicalInfo"`
	Lifestyle           Lifestyle   `gorm:"embedded;embeddedPrefix:lifestyle_" json:"lifestyle"`
	RiskScore           int         `gorm:"not null" json:"riskScore"`
	OnboardingCompleted bool        `gorm:"not null" json:"onboardingCompleted"`
	PreferredLanguage   string      `gorm:"type:varchar(10);not null" json:"preferredLanguage"`
}

func (User) TableName() string {
	return "users"
}

type Profile struct {
	FirstName        string           `gorm:"type:varchar(100)" json:"firstName"`
	LastName         string           `gorm:"type:varchar(100)" json:"lastName"`
	DateOfBirth      *time.Time       `json:"dateOfBirth,omitempty"`
	Gender           string           `gorm:"type:varchar(20)" json:"gender"`
	Phone            string           `gorm:"type:varchar(30)" json:"phone"`
	Address          Address          `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	EmergencyContact EmergencyContact `gorm:"embedded;embeddedPrefix:emergency_" json:"emergencyContact"`
}

type Address struct {
	Street  string `gorm:"type:varchar(255)" json:"street"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	State   string `gorm:"type:varchar(100)" json:"state"`
	ZipCode string `gorm:"type:varchar(20)" json:"zipCode"`
}

type EmergencyContact struct {
	Name         string `gorm:"type:varchar(255)" json:"name"`
	Relationship string `gorm:"type:varchar(100)" json:"relationship"`
	Phone        string `gorm:"type:varchar(30)" json:"phone"`
}

func (c EmergencyContact) IsZero() bool {
	return c.Name == "" && c.Relationship == "" && c.Phone == ""
}

type MedicalInfo struct {
	Conditions       datatypes.JSONSlice[string]          `json:"conditions"`
	Allergies        datatypes.JSONSlice[string]          `json:"allergies"`
	Medications      datatypes.JSONSlice[string]          `json:"medications"`
	Hospitalizations datatypes.JSONSlice[Hospitalization] `json:"hospitalizations"`
}

type Hospitalization struct {
	Date     *time.Time `json:"date,omitempty"`
	Reason   string     `json:"reason"`
	Hospital string     `json:"hospital"`
	Duration int        `json:"duration"`
}

type Lifestyle struct {
	SmokingStatus      string   `gorm:"type:varchar(20)" json:"smokingStatus"`
	AlcoholConsumption string   `gorm:"type:varchar(20)" json:"alcoholConsumption"`
	ExerciseFrequency  string   `gorm:"type:varchar(20)" json:"exerciseFrequency"`
	DietType           string   `gorm:"type:varchar(50)" json:"dietType"`
	SleepHours         *float64 `json:"sleepHours,omitempty"`
}

// Intake collects the fields the risk score is computed from.
func (u *User) Intake() riskscore.Intake {
	return riskscore.Intake{
		Conditions:         u.MedicalInfo.Conditions,
		Hospitalizations:   len(u.MedicalInfo.Hospitalizations),
		SmokingStatus:      u.Lifestyle.SmokingStatus,
		AlcoholConsumption: u.Lifestyle.AlcoholConsumption,
		ExerciseFrequency:  u.Lifestyle.ExerciseFrequency,
		SleepHours:         u.Lifestyle.SleepHours,
	}
}

func (u *User) RecalculateRiskScore() {
	u.RiskScore = riskscore.Calculate(u.Intake())
}
