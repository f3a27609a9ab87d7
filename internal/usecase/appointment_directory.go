package usecase

import (
	"context"

	"medcare-booking/internal/converter"
	"medcare-booking/internal/delivery/dto"
	"medcare-booking/internal/domain/entity"
	"medcare-booking/internal/domain/repository"
)

// AppointmentDirectory resolves the names shown next to an appointment.
// Unknown ids resolve to empty names.
type AppointmentDirectory struct {
	doctorRepo repository.DoctorRepository
	userRepo   repository.UserRepository
}

func NewAppointmentDirectory(doctorRepo repository.DoctorRepository, userRepo repository.UserRepository) *AppointmentDirectory {
	return &AppointmentDirectory{doctorRepo: doctorRepo, userRepo: userRepo}
}

// PatientNames returns a lookup backed by one read of the users collection
func (d *AppointmentDirectory) PatientNames(ctx context.Context) func(string) string {
	users := d.userRepo.FindAll(ctx)
	names := make(map[string]string, len(users))
	for _, user := range users {
		names[user.ID] = user.Name
	}
	return func(id string) string { return names[id] }
}

func (d *AppointmentDirectory) Describe(ctx context.Context, appointment *entity.Appointment) *dto.AppointmentResponse {
	return d.describe(appointment, d.PatientNames(ctx))
}

func (d *AppointmentDirectory) DescribeAll(ctx context.Context, appointments []entity.Appointment) []dto.AppointmentResponse {
	patientName := d.PatientNames(ctx)
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *d.describe(&appointments[i], patientName)
	}
	return responses
}

func (d *AppointmentDirectory) describe(appointment *entity.Appointment, patientName func(string) string) *dto.AppointmentResponse {
	response := converter.AppointmentToResponse(appointment)
	response.PatientName = patientName(appointment.PatientID)
	if doctor := d.doctorRepo.FindByID(appointment.DoctorID); doctor != nil {
		response.DoctorName = doctor.Name
		response.Specialty = doctor.Specialty
	}
	return response
}
