package repository

import (
	"context"

	"medcare-booking/internal/domain/entity"
	domainRepo "medcare-booking/internal/domain/repository"
)

// auditLogRetention bounds the activity collection; older entries roll off
const auditLogRetention = 1000

type auditLogRepository struct {
	store *EntityStore
}

func NewAuditLogRepository(store *EntityStore) domainRepo.AuditLogRepository {
	return &auditLogRepository{store: store}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	return Append(ctx, r.store, CollectionAuditLogs, *log, auditLogRetention)
}

func (r *auditLogRepository) FindAll(ctx context.Context) []entity.AuditLog {
	return ReadCollection[entity.AuditLog](ctx, r.store, CollectionAuditLogs)
}

// FindByUserID returns the newest entries of a user first
func (r *auditLogRepository) FindByUserID(ctx context.Context, userID string, limit int) []entity.AuditLog {
	logs := r.FindAll(ctx)
	result := make([]entity.AuditLog, 0)
	for i := len(logs) - 1; i >= 0; i-- {
		if logs[i].UserID != userID {
			continue
		}
		result = append(result, logs[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result
}
