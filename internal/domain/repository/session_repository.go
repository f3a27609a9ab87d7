package repository

import (
	"context"

	"medcare-booking/internal/domain/entity"
)

type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id string) *entity.Session
	Delete(ctx context.Context, id string) error
}
