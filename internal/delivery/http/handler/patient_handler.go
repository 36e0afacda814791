package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-booking-service/internal/delivery/dto"
	"hospital-booking-service/internal/usecase"
	"hospital-booking-service/pkg/response"
	"hospital-booking-service/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// Check handles GET /patients/check?phone=NNNNNNNNNN.
func (h *PatientHandler) Check(w http.ResponseWriter, r *http.Request) {
	rawPhone := r.URL.Query().Get("phone")
	if rawPhone == "" {
		response.Error(w, http.StatusBadRequest, "phone query parameter is required", nil)
		return
	}

	result, err := h.patientUsecase.CheckByPhone(r.Context(), rawPhone)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidPhone) {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.InternalServerError(w, "Failed to check patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient check completed", result)
}

// Register handles POST /patients/register.
func (h *PatientHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.patientUsecase.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPhone):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Error(w, http.StatusBadRequest, "Invalid birth date format, use YYYY-MM-DD", nil)
		case errors.Is(err, usecase.ErrPhoneAlreadyRegistered):
			response.Conflict(w, "Phone number is already registered", "PHONE_ALREADY_REGISTERED")
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", result)
}
