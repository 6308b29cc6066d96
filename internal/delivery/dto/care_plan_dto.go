package dto

import (
	"time"

	"nextcare-api/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type GoalPayload struct {
	Title         string     `json:"title" validate:"required,max=255"`
	Description   string     `json:"description"`
	TargetDate    *Timestamp `json:"targetDate"`
	Completed     bool       `json:"completed"`
	CompletedDate *Timestamp `json:"completedDate"`
}

type TaskPayload struct {
	Title         string     `json:"title" validate:"required,max=255"`
	Description   string     `json:"description"`
	Frequency     string     `json:"frequency" validate:"max=100"`
	DueDate       *Timestamp `json:"dueDate"`
	Completed     bool       `json:"completed"`
	CompletedDate *Timestamp `json:"completedDate"`
}

type PrescriptionPayload struct {
	Name      string     `json:"name" validate:"required,max=255"`
	Dosage    string     `json:"dosage" validate:"max=100"`
	Frequency string     `json:"frequency" validate:"max=100"`
	StartDate *Timestamp `json:"startDate"`
	EndDate   *Timestamp `json:"endDate"`
}

type AssignedByPayload struct {
	Name string     `json:"name" validate:"max=255"`
	Role string     `json:"role" validate:"max=100"`
	Date *Timestamp `json:"date"`
}

type CreateCarePlanRequest struct {
	Title       string                `json:"title" validate:"required,max=255"`
	Description string                `json:"description"`
	Status      string                `json:"status" validate:"omitempty,oneof=active completed paused cancelled"`
	StartDate   Timestamp             `json:"startDate" validate:"required"`
	EndDate     *Timestamp            `json:"endDate"`
	Goals       []GoalPayload         `json:"goals" validate:"omitempty,dive"`
	Tasks       []TaskPayload         `json:"tasks" validate:"omitempty,dive"`
	Medications []PrescriptionPayload `json:"medications" validate:"omitempty,dive"`
	AssignedBy  *AssignedByPayload    `json:"assignedBy"`
	Progress    *int                  `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

// UpdateCarePlanRequest carries only the fields to change. A list that is
// present replaces the stored list.
type UpdateCarePlanRequest struct {
	Title       *string               `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string               `json:"description"`
	Status      *string               `json:"status" validate:"omitempty,oneof=active completed paused cancelled"`
	StartDate   *Timestamp            `json:"startDate"`
	EndDate     *Timestamp            `json:"endDate"`
	Goals       []GoalPayload         `json:"goals" validate:"omitempty,dive"`
	Tasks       []TaskPayload         `json:"tasks" validate:"omitempty,dive"`
	Medications []PrescriptionPayload `json:"medications" validate:"omitempty,dive"`
	AssignedBy  *AssignedByPayload    `json:"assignedBy"`
	Progress    *int                  `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

// Response DTOs

type CarePlanResponse struct {
	ID          uuid.UUID             `json:"_id"`
	UserID      uuid.UUID             `json:"userId"`
	User        *OwnerResponse        `json:"user,omitempty"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Status      string                `json:"status"`
	StartDate   time.Time             `json:"startDate"`
	EndDate     *time.Time            `json:"endDate,omitempty"`
	Goals       []entity.Goal         `json:"goals"`
	Tasks       []entity.Task         `json:"tasks"`
	Medications []entity.Prescription `json:"medications"`
	AssignedBy  entity.AssignedBy     `json:"assignedBy"`
	Progress    int                   `json:"progress"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}
