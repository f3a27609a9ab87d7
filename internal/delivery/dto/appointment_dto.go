package dto

import (
	"time"
)

// Request DTOs

// CreateAppointmentRequest books for the logged-in patient
type CreateAppointmentRequest struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	Date     string `json:"date" validate:"required,isodate"`
	Time     string `json:"time" validate:"required,hhmm"`
	Reason   string `json:"reason" validate:"required,max=500"`
}

type CompleteAppointmentRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=2000"`
}

// AppointmentQuery is read from the query string of GET /appointments
type AppointmentQuery struct {
	Date   string `validate:"omitempty,oneof=all today upcoming past"`
	Status string `validate:"omitempty,oneof=pending approved completed cancelled"`
	Search string `validate:"omitempty,max=100"`
	Sort   string `validate:"omitempty,oneof=schedule schedule_desc recent"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patient_id"`
	PatientName string     `json:"patient_name,omitempty"`
	DoctorID    string     `json:"doctor_id"`
	DoctorName  string     `json:"doctor_name,omitempty"`
	Specialty   string     `json:"specialty,omitempty"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Reason      string     `json:"reason"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// AppointmentListResponse counts per status cover the whole list, before filtering
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
	StatusCounts map[string]int        `json:"status_counts"`
}
