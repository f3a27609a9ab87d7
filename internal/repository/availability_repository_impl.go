package repository

import (
	"context"

	"medcare-booking/internal/domain/entity"
	domainRepo "medcare-booking/internal/domain/repository"
)

type availabilityRepository struct {
	store *EntityStore
}

func NewAvailabilityRepository(store *EntityStore) domainRepo.AvailabilityRepository {
	return &availabilityRepository{store: store}
}

func (r *availabilityRepository) FindByDoctorID(ctx context.Context, doctorID string) (entity.WeeklyAvailability, bool) {
	availability, ok := ReadMap[entity.WeeklyAvailability](ctx, r.store, CollectionDoctorAvailability)[doctorID]
	return availability, ok
}

func (r *availabilityRepository) Save(ctx context.Context, doctorID string, availability entity.WeeklyAvailability) error {
	return PutMapEntry(ctx, r.store, CollectionDoctorAvailability, doctorID, availability)
}
