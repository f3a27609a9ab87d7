package dto

// Request DTOs

type CreateMedicalRecordRequest struct {
	PatientID     string            `json:"patient_id" validate:"required"`
	AppointmentID string            `json:"appointment_id" validate:"omitempty"`
	Date          string            `json:"date" validate:"required,isodate"`
	Diagnosis     string            `json:"diagnosis" validate:"required,max=500"`
	Treatment     string            `json:"treatment" validate:"required,max=2000"`
	Notes         string            `json:"notes" validate:"omitempty,max=4000"`
	Vitals        map[string]string `json:"vitals" validate:"omitempty,dive,keys,required,max=50,endkeys,max=50"`
}

// MedicalRecordQuery is read from the query string of GET /medical-records
type MedicalRecordQuery struct {
	Search   string `validate:"omitempty,max=100"`
	DoctorID string `validate:"omitempty,max=64"`
}

// Response DTOs

type MedicalRecordResponse struct {
	ID            string            `json:"id"`
	PatientID     string            `json:"patient_id"`
	DoctorID      string            `json:"doctor_id"`
	DoctorName    string            `json:"doctor_name,omitempty"`
	Specialty     string            `json:"specialty,omitempty"`
	AppointmentID string            `json:"appointment_id,omitempty"`
	Date          string            `json:"date"`
	Diagnosis     string            `json:"diagnosis"`
	Treatment     string            `json:"treatment"`
	Notes         string            `json:"notes"`
	Vitals        map[string]string `json:"vitals,omitempty"`
}

type MedicalRecordListResponse struct {
	Records []MedicalRecordResponse `json:"records"`
	Doctors []DoctorResponse        `json:"doctors"`
	Total   int                     `json:"total"`
}
