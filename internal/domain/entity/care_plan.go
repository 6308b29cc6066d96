package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CarePlanStatus string

const (
	CarePlanStatusActive    CarePlanStatus = "active"
	CarePlanStatusCompleted CarePlanStatus = "completed"
	CarePlanStatusPaused    CarePlanStatus = "paused"
	CarePlanStatusCancelled CarePlanStatus = "cancelled"
)

// CarePlan groups the goals, tasks and medications prescribed to one user
type CarePlan struct {
	Base
	UserID      uuid.UUID                         `gorm:"type:uuid;not null;index" json:"userId"`
	Title       string                            `gorm:"type:varchar(255);not null" json:"title"`
	Description string                            `gorm:"type:text" json:"description,omitempty"`
	Status      CarePlanStatus                    `gorm:"type:varchar(32);not null;index" json:"status"`
	StartDate   time.Time                         `gorm:"not null" json:"startDate"`
	EndDate     *time.Time                        `json:"endDate,omitempty"`
	Goals       datatypes.JSONSlice[Goal]         `json:"goals"`
	Tasks       datatypes.JSONSlice[Task]         `json:"tasks"`
	Medications datatypes.JSONSlice[Prescription] `json:"medications"`
	AssignedBy  AssignedBy                        `gorm:"embedded;embeddedPrefix:assigned_by_" json:"assignedBy"`
	Progress    int                               `gorm:"not null" json:"progress"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (CarePlan) TableName() string {
	return "care_plans"
}

type Goal struct {
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

type Task struct {
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Frequency     string     `json:"frequency,omitempty"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

type Prescription struct {
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage,omitempty"`
	Frequency string     `json:"frequency,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

type AssignedBy struct {
	Name string     `gorm:"type:varchar(255)" json:"name"`
	Role string     `gorm:"type:varchar(100)" json:"role"`
	Date *time.Time `json:"date,omitempty"`
}
