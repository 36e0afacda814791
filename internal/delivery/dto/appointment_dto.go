package dto

import (
	"time"

	"hospital-booking-service/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	Date         string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time         string `json:"time" validate:"required"` // Format: HH:MM or HH:MM:SS
	PatientName  string `json:"patient_name" validate:"required,min=2"`
	PatientPhone string `json:"patient_phone" validate:"required"`

	// Optional extended patient attributes, stored in metadata
	Email            string `json:"email" validate:"omitempty,email"`
	BirthDate        string `json:"birth_date" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender           string `json:"gender" validate:"omitempty"`
	BloodGroup       string `json:"blood_group" validate:"omitempty"`
	Address          string `json:"address" validate:"omitempty"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID               uuid.UUID   `json:"id"`
	DoctorID         uuid.UUID   `json:"doctor_id"`
	Date             string      `json:"date"`
	Time             string      `json:"time"`
	PatientName      string      `json:"patient_name"`
	PatientPhone     string      `json:"patient_phone"`
	Status           string      `json:"status"`
	VerificationCode string      `json:"verification_code"`
	Metadata         entity.JSON `json:"metadata,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type BookAppointmentResponse struct {
	Success     bool                 `json:"success"`
	Appointment *AppointmentResponse `json:"appointment"`
}
