package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"hospital-booking-service/internal/delivery/dto"
	"hospital-booking-service/internal/usecase"
	"hospital-booking-service/pkg/response"
	"hospital-booking-service/pkg/timeslot"
	"hospital-booking-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SlotHandler struct {
	slotLockUsecase usecase.SlotLockUsecase
	validator       *validator.CustomValidator
}

func NewSlotHandler(slotLockUsecase usecase.SlotLockUsecase, validator *validator.CustomValidator) *SlotHandler {
	return &SlotHandler{
		slotLockUsecase: slotLockUsecase,
		validator:       validator,
	}
}

// CheckSlot handles POST /doctors/{id}/check-slot?date=YYYY-MM-DD&time=HH:MM.
// Conflicts are reported in the response body with available=false and a
// code, not as an error status: the slot picker polls this endpoint and
// treats both outcomes as normal.
func (h *SlotHandler) CheckSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	slotTime := r.URL.Query().Get("time")
	if date == "" || slotTime == "" {
		response.Error(w, http.StatusBadRequest, "date and time query parameters are required", nil)
		return
	}

	// The body is optional; absent or empty means a read-only check.
	var req dto.CheckSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.slotLockUsecase.CheckSlot(r.Context(), doctorID, date, slotTime, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateFormat):
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case errors.Is(err, timeslot.ErrInvalidTime):
			response.Error(w, http.StatusBadRequest, "Invalid time format, use HH:MM", nil)
		case errors.Is(err, usecase.ErrHolderRequired):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, err.Error())
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}
