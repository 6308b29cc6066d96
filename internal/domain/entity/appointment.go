package entity

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentType string

const (
	AppointmentTypeCheckup      AppointmentType = "checkup"
	AppointmentTypeFollowUp     AppointmentType = "follow-up"
	AppointmentTypeTherapy      AppointmentType = "therapy"
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeTest         AppointmentType = "test"
	AppointmentTypeOther        AppointmentType = "other"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

const (
	DefaultAppointmentDuration = 30
	DefaultLocationType        = "clinic"
)

// Appointment is a visit booked by its owning user
type Appointment struct {
	Base
	UserID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"userId"`
	Title        string            `gorm:"type:varchar(255);not null" json:"title"`
	Type         AppointmentType   `gorm:"type:varchar(32);not null" json:"type"`
	Provider     Provider          `gorm:"embedded;embeddedPrefix:provider_" json:"provider"`
	DateTime     time.Time         `gorm:"not null;index" json:"dateTime"`
	Duration     int               `gorm:"not null" json:"duration"`
	Location     Location          `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Status       AppointmentStatus `gorm:"type:varchar(32);not null;index" json:"status"`
	Notes        string            `gorm:"type:text" json:"notes,omitempty"`
	ReminderSent bool              `gorm:"not null" json:"reminderSent"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

type Provider struct {
	Name      string `gorm:"type:varchar(255)" json:"name"`
	Specialty string `gorm:"type:varchar(100)" json:"specialty"`
	Facility  string `gorm:"type:varchar(255)" json:"facility"`
}

type Location struct {
	Type    string `gorm:"type:varchar(50)" json:"type"`
	Address string `gorm:"type:varchar(255)" json:"address"`
}
