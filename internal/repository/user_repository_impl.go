package repository

import (
	"context"
	"strings"

	"medcare-booking/internal/domain/entity"
	domainRepo "medcare-booking/internal/domain/repository"
)

type userRepository struct {
	store *EntityStore
}

func NewUserRepository(store *EntityStore) domainRepo.UserRepository {
	return &userRepository{store: store}
}

// Save upserts by email, so re-registering an address replaces the account
func (r *userRepository) Save(ctx context.Context, user *entity.User) error {
	return UpsertBy(ctx, r.store, CollectionUsers, *user, func(existing entity.User) bool {
		return strings.EqualFold(existing.Email, user.Email)
	})
}

// Create stores a new account; ErrEntityConflict when the email is taken
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return Insert(ctx, r.store, CollectionUsers, *user, func(existing entity.User) bool {
		return strings.EqualFold(existing.Email, user.Email)
	})
}

func (r *userRepository) FindAll(ctx context.Context) []entity.User {
	return ReadCollection[entity.User](ctx, r.store, CollectionUsers)
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) *entity.User {
	for _, user := range r.FindAll(ctx) {
		if strings.EqualFold(user.Email, email) {
			return &user
		}
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) *entity.User {
	for _, user := range r.FindAll(ctx) {
		if user.ID == id {
			return &user
		}
	}
	return nil
}
