package converter

import (
	"medcare-booking/internal/delivery/dto"
	"medcare-booking/internal/domain/entity"
)

// DoctorToResponse converts a catalog Doctor to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		Name:         doctor.Name,
		Specialty:    doctor.Specialty,
		Email:        doctor.Email,
		Phone:        doctor.Phone,
		Image:        doctor.Image,
		Rating:       doctor.Rating,
		Experience:   doctor.Experience,
		Availability: doctor.Availability,
		Bio:          doctor.Bio,
		Credentials:  doctor.Credentials,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
