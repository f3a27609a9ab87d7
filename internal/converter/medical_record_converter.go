package converter

import (
	"medcare-booking/internal/delivery/dto"
	"medcare-booking/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to MedicalRecordResponse DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		ID:            record.ID,
		PatientID:     record.PatientID,
		DoctorID:      record.DoctorID,
		AppointmentID: record.AppointmentID,
		Date:          record.Date,
		Diagnosis:     record.Diagnosis,
		Treatment:     record.Treatment,
		Notes:         record.Notes,
	}

	if len(record.Vitals) > 0 {
		response.Vitals = make(map[string]string, len(record.Vitals))
		for name, reading := range record.Vitals {
			response.Vitals[string(name)] = reading.String()
		}
	}

	return response
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities to slice of MedicalRecordResponse DTOs
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i])
	}
	return responses
}

// CreateMedicalRecordRequestToRecord builds a record authored by doctorID.
// Vitals that parse as numbers are kept exact.
func CreateMedicalRecordRequestToRecord(doctorID string, req *dto.CreateMedicalRecordRequest) *entity.MedicalRecord {
	record := &entity.MedicalRecord{
		PatientID:     req.PatientID,
		DoctorID:      doctorID,
		AppointmentID: req.AppointmentID,
		Date:          req.Date,
		Diagnosis:     req.Diagnosis,
		Treatment:     req.Treatment,
		Notes:         req.Notes,
	}

	if len(req.Vitals) > 0 {
		record.Vitals = make(entity.Vitals, len(req.Vitals))
		for name, value := range req.Vitals {
			record.Vitals[entity.VitalName(name)] = entity.ParseVitalReading(value)
		}
	}

	return record
}
