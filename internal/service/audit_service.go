package service

import (
	"context"
	"time"

	"medcare-booking/internal/domain/entity"
	"medcare-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AuditService interface {
	LogCreate(ctx context.Context, userID string, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, userID string, action string, entityName string, entityID string, oldValue, newValue interface{}) error
	LogEvent(ctx context.Context, userID string, action string, metadata entity.JSON) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
	now       func() time.Time
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository, now func() time.Time) AuditService {
	if now == nil {
		now = time.Now
	}
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
		now:       now,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, userID string, action string, entityName string, entityID string, newValue interface{}) error {
	return s.LogEvent(ctx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, userID string, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.LogEvent(ctx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogEvent logs an action that is not tied to one entity, e.g. a login
func (s *auditService) LogEvent(ctx context.Context, userID string, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Metadata:  metadata,
		CreatedAt: s.now().UTC(),
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
