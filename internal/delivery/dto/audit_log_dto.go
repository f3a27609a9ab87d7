package dto

import (
	"medcare-booking/internal/domain/entity"
	"time"
)

// Response DTOs

type AuditLogResponse struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id,omitempty"`
	Action    string      `json:"action"`
	Metadata  entity.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
