package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

// DoctorQuery is read from the query string of GET /doctors
type DoctorQuery struct {
	Search    string `validate:"omitempty,max=100"`
	Specialty string `validate:"omitempty,max=100"`
	SortBy    string `validate:"omitempty,oneof=rating experience name"`
}

type UpdateAvailabilityRequest struct {
	Availability map[string][]string `json:"availability" validate:"required,dive,keys,oneof=monday tuesday wednesday thursday friday saturday sunday,endkeys,dive,hhmm"`
}

// Response DTOs

type DoctorResponse struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Specialty    string              `json:"specialty"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	Image        string              `json:"image,omitempty"`
	Rating       decimal.Decimal     `json:"rating"`
	Experience   string              `json:"experience"`
	Availability map[string][]string `json:"availability"`
	Bio          string              `json:"bio"`
	Credentials  []string            `json:"credentials"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
}

type SlotListResponse struct {
	DoctorID string   `json:"doctor_id"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}

type BookingDatesResponse struct {
	Dates []string `json:"dates"`
}

type AvailabilityResponse struct {
	DoctorID     string              `json:"doctor_id"`
	Availability map[string][]string `json:"availability"`
}
