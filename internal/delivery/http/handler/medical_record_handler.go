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

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *MedicalRecordHandler) GetMyRecords(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	q := r.URL.Query()
	query := dto.MedicalRecordQuery{
		Search:   q.Get("search"),
		DoctorID: q.Get("doctor"),
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", h.recordUsecase.ListForPatient(r.Context(), patientID, &query))
}

func (h *MedicalRecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	record, err := h.recordUsecase.GetForPatient(r.Context(), patientID, mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrMedicalRecordNotFound) {
			response.NotFound(w, "Medical record not found")
			return
		}
		response.InternalServerError(w, "Failed to get medical record")
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", record)
}

// CreateRecord lets the logged-in doctor add a clinical entry for a patient
func (h *MedicalRecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), doctorID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create medical record")
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

func (h *MedicalRecordHandler) DownloadRecord(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	download, err := h.recordUsecase.Download(r.Context(), patientID, mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrMedicalRecordNotFound) {
			response.NotFound(w, "Medical record not found")
			return
		}
		response.InternalServerError(w, "Failed to download medical record")
		return
	}

	response.Attachment(w, download.ContentType, download.Filename, download.Body)
}

func (h *MedicalRecordHandler) ExportRecords(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	download, err := h.recordUsecase.ExportWorkbook(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to export medical records")
		return
	}

	response.Attachment(w, download.ContentType, download.Filename, download.Body)
}
