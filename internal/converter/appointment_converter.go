package converter

import (
	"medcare-booking/internal/delivery/dto"
	"medcare-booking/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Names are filled in by the caller when it has them.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:        appointment.ID,
		PatientID: appointment.PatientID,
		DoctorID:  appointment.DoctorID,
		Date:      appointment.Date,
		Time:      appointment.Time,
		Reason:    appointment.Reason,
		Status:    string(appointment.Status),
		Notes:     appointment.Notes,
		CreatedAt: appointment.CreatedAt,
		UpdatedAt: appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// CreateAppointmentRequestToDraft binds a booking request to the patient making it
func CreateAppointmentRequestToDraft(patientID string, req *dto.CreateAppointmentRequest) entity.AppointmentDraft {
	return entity.AppointmentDraft{
		PatientID: patientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
	}
}

// AppointmentQueryToFilter maps list query parameters onto the domain filter
func AppointmentQueryToFilter(q *dto.AppointmentQuery) entity.AppointmentFilter {
	return entity.AppointmentFilter{
		DateScope: q.Date,
		Status:    entity.AppointmentStatus(q.Status),
		Search:    q.Search,
		SortBy:    q.Sort,
	}
}
