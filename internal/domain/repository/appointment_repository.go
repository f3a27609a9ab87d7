package repository

import (
	"context"

	"medcare-booking/internal/domain/entity"
)

type AppointmentRepository interface {
	Save(ctx context.Context, appointment *entity.Appointment) error
	FindAll(ctx context.Context) []entity.Appointment
	FindByID(ctx context.Context, id string) *entity.Appointment
	FindByPatientID(ctx context.Context, patientID string) []entity.Appointment
	FindByDoctorID(ctx context.Context, doctorID string) []entity.Appointment
	// Update runs fn against the stored appointment and persists the result.
	// ErrEntityNotFound is returned when id is unknown.
	Update(ctx context.Context, id string, fn func(*entity.Appointment) error) (*entity.Appointment, error)
}
