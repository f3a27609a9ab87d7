package repository

import (
	"context"

	"medcare-booking/internal/domain/entity"
)

// AvailabilityRepository stores doctor-edited weekly availability that
// overrides the catalog defaults.
type AvailabilityRepository interface {
	FindByDoctorID(ctx context.Context, doctorID string) (entity.WeeklyAvailability, bool)
	Save(ctx context.Context, doctorID string, availability entity.WeeklyAvailability) error
}
