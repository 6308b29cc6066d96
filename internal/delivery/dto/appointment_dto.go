package dto

import (
	"time"

	"nextcare-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type ProviderPayload struct {
	Name      string `json:"name" validate:"max=255"`
	Specialty string `json:"specialty" validate:"max=100"`
	Facility  string `json:"facility" validate:"max=255"`
}

type LocationPayload struct {
	Type    string `json:"type" validate:"max=50"`
	Address string `json:"address" validate:"max=255"`
}

type CreateAppointmentRequest struct {
	Title        string           `json:"title" validate:"required,max=255"`
	Type         string           `json:"type" validate:"required,oneof=checkup follow-up therapy consultation test other"`
	Provider     *ProviderPayload `json:"provider"`
	DateTime     Timestamp        `json:"dateTime" validate:"required"`
	Duration     *int             `json:"duration" validate:"omitempty,gte=1,lte=1440"`
	Location     *LocationPayload `json:"location"`
	Status       string           `json:"status" validate:"omitempty,oneof=scheduled completed cancelled no-show"`
	Notes        string           `json:"notes"`
	ReminderSent bool             `json:"reminderSent"`
}

// UpdateAppointmentRequest carries only the fields to change.
type UpdateAppointmentRequest struct {
	Title        *string          `json:"title" validate:"omitempty,min=1,max=255"`
	Type         *string          `json:"type" validate:"omitempty,oneof=checkup follow-up therapy consultation test other"`
	Provider     *ProviderPayload `json:"provider"`
	DateTime     *Timestamp       `json:"dateTime"`
	Duration     *int             `json:"duration" validate:"omitempty,gte=1,lte=1440"`
	Location     *LocationPayload `json:"location"`
	Status       *string          `json:"status" validate:"omitempty,oneof=scheduled completed cancelled no-show"`
	Notes        *string          `json:"notes"`
	ReminderSent *bool            `json:"reminderSent"`
}

// Response DTOs

type AppointmentResponse struct {
	ID           uuid.UUID       `json:"_id"`
	UserID       uuid.UUID       `json:"userId"`
	User         *OwnerResponse  `json:"user,omitempty"`
	Title        string          `json:"title"`
	Type         string          `json:"type"`
	Provider     entity.Provider `json:"provider"`
	DateTime     time.Time       `json:"dateTime"`
	Duration     int             `json:"duration"`
	Location     entity.Location `json:"location"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes,omitempty"`
	ReminderSent bool            `json:"reminderSent"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
