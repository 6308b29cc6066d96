package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Response DTOs

type AuditLogResponse struct {
	ID        int64             `json:"id"`
	UserID    *uuid.UUID        `json:"userId,omitempty"`
	User      *OwnerResponse    `json:"user,omitempty"`
	Action    string            `json:"action"`
	Metadata  datatypes.JSONMap `json:"metadata"`
	CreatedAt time.Time         `json:"createdAt"`
}
