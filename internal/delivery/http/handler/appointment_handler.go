package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"medcare-booking/internal/converter"
	"medcare-booking/internal/delivery/dto"
	"medcare-booking/internal/delivery/http/middleware"
	"medcare-booking/internal/domain/entity"
	"medcare-booking/internal/usecase"
	"medcare-booking/pkg/response"
	"medcare-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	dashboardUsecase   usecase.DashboardUsecase
	directory          *usecase.AppointmentDirectory
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(
	appointmentUsecase usecase.AppointmentUsecase,
	dashboardUsecase usecase.DashboardUsecase,
	directory *usecase.AppointmentDirectory,
	validator *validator.CustomValidator,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		dashboardUsecase:   dashboardUsecase,
		directory:          directory,
		validator:          validator,
	}
}

// GetMyAppointments lists the session user's appointments as patient or doctor
func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	q := r.URL.Query()
	query := dto.AppointmentQuery{
		Date:   q.Get("date"),
		Status: q.Get("status"),
		Search: q.Get("search"),
		Sort:   q.Get("sort"),
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointments := h.dashboardUsecase.Appointments(r.Context(), session.User, &query)
	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointment, ok := h.owned(w, r, func(a *entity.Appointment, userID string) bool {
		return a.BelongsTo(userID)
	})
	if !ok {
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", h.directory.Describe(r.Context(), appointment))
}

// CreateAppointment books a pending appointment for the logged-in patient
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), converter.CreateAppointmentRequestToDraft(patientID, &req))
	if err != nil {
		response.InternalServerError(w, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", h.directory.Describe(r.Context(), appointment))
}

func (h *AppointmentHandler) ApproveAppointment(w http.ResponseWriter, r *http.Request) {
	appointment, ok := h.owned(w, r, isDoctorOf)
	if !ok {
		return
	}

	updated, err := h.appointmentUsecase.Approve(r.Context(), appointment.ID)
	h.respondTransition(w, r, updated, err, "Appointment approved successfully")
}

// CancelAppointment is used by the patient to cancel and by the doctor to reject
func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointment, ok := h.owned(w, r, func(a *entity.Appointment, userID string) bool {
		return a.BelongsTo(userID)
	})
	if !ok {
		return
	}

	updated, err := h.appointmentUsecase.Cancel(r.Context(), appointment.ID)
	h.respondTransition(w, r, updated, err, "Appointment cancelled successfully")
}

func (h *AppointmentHandler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CompleteAppointmentRequest
	// the body is optional
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, ok := h.owned(w, r, isDoctorOf)
	if !ok {
		return
	}

	updated, err := h.appointmentUsecase.Complete(r.Context(), appointment.ID, req.Notes)
	h.respondTransition(w, r, updated, err, "Appointment completed successfully")
}

// owned loads the appointment named in the path and checks the session user
// may act on it. It writes the error response itself and reports false on failure.
func (h *AppointmentHandler) owned(w http.ResponseWriter, r *http.Request, allowed func(*entity.Appointment, string) bool) (*entity.Appointment, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return nil, false
	}

	appointment, err := h.appointmentUsecase.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return nil, false
		}
		response.InternalServerError(w, "Failed to get appointment")
		return nil, false
	}

	if !allowed(appointment, userID) {
		response.Forbidden(w, "Appointment does not belong to you")
		return nil, false
	}
	return appointment, true
}

func (h *AppointmentHandler) respondTransition(w http.ResponseWriter, r *http.Request, appointment *entity.Appointment, err error, message string) {
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrInvalidTransition):
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, message, h.directory.Describe(r.Context(), appointment))
}

func isDoctorOf(a *entity.Appointment, userID string) bool {
	return a.DoctorID == userID
}
