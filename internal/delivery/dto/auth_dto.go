package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	FirstName string `json:"firstName" validate:"omitempty,max=100"`
	LastName  string `json:"lastName" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

// AuthResponse is returned by register and login. It never carries the password hash.
type AuthResponse struct {
	ID                  uuid.UUID       `json:"_id"`
	Email               string          `json:"email"`
	Role                string          `json:"role"`
	Profile             ProfileResponse `json:"profile"`
	OnboardingCompleted bool            `json:"onboardingCompleted"`
	Token               string          `json:"token"`
}
