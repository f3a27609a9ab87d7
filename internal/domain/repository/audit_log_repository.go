package repository

import (
	"context"

	"medcare-booking/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context) []entity.AuditLog
	FindByUserID(ctx context.Context, userID string, limit int) []entity.AuditLog
}
