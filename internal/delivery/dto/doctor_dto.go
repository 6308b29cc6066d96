package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Specialty    string   `json:"specialty" validate:"required,max=100"`
	Facility     string   `json:"facility" validate:"required,max=255"`
	ImageURL     string   `json:"imageUrl" validate:"omitempty,max=2048"`
	Bio          string   `json:"bio"`
	Availability []string `json:"availability" validate:"omitempty,dive,max=100"`
	Active       *bool    `json:"active"`
}

type UpdateDoctorRequest struct {
	Name         *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Specialty    *string  `json:"specialty" validate:"omitempty,min=1,max=100"`
	Facility     *string  `json:"facility" validate:"omitempty,min=1,max=255"`
	ImageURL     *string  `json:"imageUrl" validate:"omitempty,max=2048"`
	Bio          *string  `json:"bio"`
	Availability []string `json:"availability" validate:"omitempty,dive,max=100"`
	Active       *bool    `json:"active"`
}

// Response DTOs

type DoctorResponse struct {
	ID           uuid.UUID `json:"_id"`
	Name         string    `json:"name"`
	Specialty    string    `json:"specialty"`
	Facility     string    `json:"facility"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Availability []string  `json:"availability"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
