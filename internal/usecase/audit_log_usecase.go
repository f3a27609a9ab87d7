package usecase

import (
	"context"
	"errors"

	"medcare-booking/internal/converter"
	"medcare-booking/internal/delivery/dto"
	"medcare-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// DefaultActivityLimit caps the activity feed when the caller gives no limit
const DefaultActivityLimit = 50

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

type AuditLogUsecase interface {
	GetUserAuditLogs(ctx context.Context, userID string, limit int) *dto.AuditLogListResponse
	GetAuditLog(ctx context.Context, userID string, id string) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// GetUserAuditLogs returns the user's activity, newest first
func (u *auditLogUsecase) GetUserAuditLogs(ctx context.Context, userID string, limit int) *dto.AuditLogListResponse {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	logs := u.auditLogRepo.FindByUserID(ctx, userID, limit)

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
	}
}

// GetAuditLog finds one entry of the user's own activity
func (u *auditLogUsecase) GetAuditLog(ctx context.Context, userID string, id string) (*dto.AuditLogResponse, error) {
	for _, auditLog := range u.auditLogRepo.FindAll(ctx) {
		if auditLog.ID == id && auditLog.UserID == userID {
			return converter.AuditLogToResponse(&auditLog), nil
		}
	}
	u.log.Warnf("Failed to find audit log %s for user %s", id, userID)
	return nil, ErrAuditLogNotFound
}
