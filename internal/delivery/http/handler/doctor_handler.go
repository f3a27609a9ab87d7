package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medcare-booking/internal/delivery/dto"
	"medcare-booking/internal/delivery/http/middleware"
	"medcare-booking/internal/usecase"
	"medcare-booking/pkg/response"
	"medcare-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dto.DoctorQuery{
		Search:    q.Get("search"),
		Specialty: q.Get("specialty"),
		SortBy:    q.Get("sort"),
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", h.doctorUsecase.FindDoctors(r.Context(), &query))
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Specialties retrieved successfully", h.doctorUsecase.Specialties(r.Context()))
}

// GetSlots lists the advertised slots of a doctor for ?date=YYYY-MM-DD
func (h *DoctorHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date is required")
		return
	}

	slots, err := h.doctorUsecase.AvailableSlots(r.Context(), mux.Vars(r)["id"], date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, usecase.ErrInvalidDate):
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
		default:
			response.InternalServerError(w, "Failed to get slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

func (h *DoctorHandler) GetBookingDates(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Booking dates retrieved successfully", h.doctorUsecase.BookingDates(r.Context()))
}

func (h *DoctorHandler) GetMyAvailability(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	availability, err := h.doctorUsecase.Availability(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

// UpdateMyAvailability replaces the logged-in doctor's weekly slots
func (h *DoctorHandler) UpdateMyAvailability(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req dto.UpdateAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	availability, err := h.doctorUsecase.SaveAvailability(r.Context(), doctorID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to update availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability updated successfully", availability)
}
