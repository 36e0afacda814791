package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hospital-booking-service/internal/delivery/dto"
	"hospital-booking-service/internal/usecase"
	"hospital-booking-service/pkg/response"
	"hospital-booking-service/pkg/timeslot"
	"hospital-booking-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorScheduleHandler struct {
	scheduleUsecase usecase.DoctorScheduleUsecase
	validator       *validator.CustomValidator
}

func NewDoctorScheduleHandler(scheduleUsecase usecase.DoctorScheduleUsecase, validator *validator.CustomValidator) *DoctorScheduleHandler {
	return &DoctorScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

// ListForDoctor handles GET /doctors/{id}/schedules.
func (h *DoctorScheduleHandler) ListForDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	result, err := h.scheduleUsecase.ListForDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get schedules")
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", result)
}

// AvailableSlots handles GET /doctors/{id}/slots?date=YYYY-MM-DD.
func (h *DoctorScheduleHandler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "date query parameter is required", nil)
		return
	}

	result, err := h.scheduleUsecase.GetAvailableSlots(r.Context(), doctorID, date)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDateFormat) {
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
		response.InternalServerError(w, "Failed to get available slots")
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", result)
}

func (h *DoctorScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.scheduleUsecase.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.Is(err, timeslot.ErrInvalidTime):
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		case errors.Is(err, usecase.ErrInvalidTimeRange):
			response.Error(w, http.StatusBadRequest, "Start time must be before end time", nil)
		default:
			response.InternalServerError(w, "Failed to create schedule")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Schedule created successfully", result)
}

func (h *DoctorScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}

	var req dto.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.scheduleUsecase.Update(r.Context(), scheduleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrScheduleNotFound):
			response.NotFound(w, "Schedule not found")
		case errors.Is(err, timeslot.ErrInvalidTime):
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		case errors.Is(err, usecase.ErrInvalidTimeRange):
			response.Error(w, http.StatusBadRequest, "Start time must be before end time", nil)
		default:
			response.InternalServerError(w, "Failed to update schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule updated successfully", result)
}

func (h *DoctorScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid schedule ID", nil)
		return
	}

	if err := h.scheduleUsecase.Delete(r.Context(), scheduleID); err != nil {
		if errors.Is(err, usecase.ErrScheduleNotFound) {
			response.NotFound(w, "Schedule not found")
			return
		}
		response.InternalServerError(w, "Failed to delete schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule deleted successfully", nil)
}
