package repository

import (
	"context"

	"medcare-booking/internal/domain/entity"
)

// UserRepository stores registered accounts. Save upserts by email; Create
// refuses a taken email with ErrEntityConflict. Finders return nil when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Save(ctx context.Context, user *entity.User) error
	FindAll(ctx context.Context) []entity.User
	FindByEmail(ctx context.Context, email string) *entity.User
	FindByID(ctx context.Context, id string) *entity.User
}
