package repository

import (
	"context"

	"medcare-booking/internal/domain/entity"
	domainRepo "medcare-booking/internal/domain/repository"
)

type sessionRepository struct {
	store *EntityStore
}

func NewSessionRepository(store *EntityStore) domainRepo.SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	return r.store.SetSession(ctx, *session)
}

func (r *sessionRepository) FindByID(ctx context.Context, id string) *entity.Session {
	session, ok := r.store.GetSession(ctx, id)
	if !ok {
		return nil
	}
	return session
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.store.ClearSession(ctx, id)
}
