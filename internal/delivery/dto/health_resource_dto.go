package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateHealthResourceRequest struct {
	Title             string     `json:"title" validate:"required,max=255"`
	Description       string     `json:"description"`
	Category          string     `json:"category" validate:"required,oneof=article video exercise guide tool support-group other"`
	Tags              []string   `json:"tags" validate:"omitempty,dive,max=100"`
	Content           string     `json:"content"`
	URL               string     `json:"url" validate:"omitempty,max=2048"`
	ImageURL          string     `json:"imageUrl" validate:"omitempty,max=2048"`
	Author            string     `json:"author" validate:"omitempty,max=255"`
	PublishDate       *Timestamp `json:"publishDate"`
	Difficulty        string     `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration          string     `json:"duration" validate:"omitempty,max=50"`
	Featured          bool       `json:"featured"`
	RelatedConditions []string   `json:"relatedConditions" validate:"omitempty,dive,max=255"`
}

type UpdateHealthResourceRequest struct {
	Title             *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description       *string    `json:"description"`
	Category          *string    `json:"category" validate:"omitempty,oneof=article video exercise guide tool support-group other"`
	Tags              []string   `json:"tags" validate:"omitempty,dive,max=100"`
	Content           *string    `json:"content"`
	URL               *string    `json:"url" validate:"omitempty,max=2048"`
	ImageURL          *string    `json:"imageUrl" validate:"omitempty,max=2048"`
	Author            *string    `json:"author" validate:"omitempty,max=255"`
	PublishDate       *Timestamp `json:"publishDate"`
	Difficulty        *string    `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration          *string    `json:"duration" validate:"omitempty,max=50"`
	Featured          *bool      `json:"featured"`
	RelatedConditions []string   `json:"relatedConditions" validate:"omitempty,dive,max=255"`
}

// Response DTOs

type HealthResourceResponse struct {
	ID                uuid.UUID  `json:"_id"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	Category          string     `json:"category"`
	Tags              []string   `json:"tags"`
	Content           string     `json:"content,omitempty"`
	URL               string     `json:"url,omitempty"`
	ImageURL          string     `json:"imageUrl,omitempty"`
	Author            string     `json:"author,omitempty"`
	PublishDate       *time.Time `json:"publishDate,omitempty"`
	Difficulty        string     `json:"difficulty,omitempty"`
	Duration          string     `json:"duration,omitempty"`
	Featured          bool       `json:"featured"`
	RelatedConditions []string   `json:"relatedConditions"`
	Views             int64      `json:"views"`
	Likes             int64      `json:"likes"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
