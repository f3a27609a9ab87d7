package repository

import (
	"context"

	"medcare-booking/internal/domain/entity"
	domainRepo "medcare-booking/internal/domain/repository"
)

type appointmentRepository struct {
	store *EntityStore
}

func NewAppointmentRepository(store *EntityStore) domainRepo.AppointmentRepository {
	return &appointmentRepository{store: store}
}

func (r *appointmentRepository) Save(ctx context.Context, appointment *entity.Appointment) error {
	return Upsert(ctx, r.store, CollectionAppointments, *appointment)
}

func (r *appointmentRepository) FindAll(ctx context.Context) []entity.Appointment {
	return ReadCollection[entity.Appointment](ctx, r.store, CollectionAppointments)
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) *entity.Appointment {
	for _, appointment := range r.FindAll(ctx) {
		if appointment.ID == id {
			return &appointment
		}
	}
	return nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID string) []entity.Appointment {
	return r.filter(ctx, func(a *entity.Appointment) bool { return a.PatientID == patientID })
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) []entity.Appointment {
	return r.filter(ctx, func(a *entity.Appointment) bool { return a.DoctorID == doctorID })
}

func (r *appointmentRepository) Update(ctx context.Context, id string, fn func(*entity.Appointment) error) (*entity.Appointment, error) {
	updated, err := Update(ctx, r.store, CollectionAppointments, id, fn)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *appointmentRepository) filter(ctx context.Context, keep func(*entity.Appointment) bool) []entity.Appointment {
	result := make([]entity.Appointment, 0)
	for _, appointment := range r.FindAll(ctx) {
		if keep(&appointment) {
			result = append(result, appointment)
		}
	}
	return result
}
