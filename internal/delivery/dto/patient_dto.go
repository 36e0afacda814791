package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPatientRequest struct {
	PhoneNumber      string `json:"phone_number" validate:"required"`
	FirstName        string `json:"first_name" validate:"required,min=2"`
	LastName         string `json:"last_name" validate:"required,min=2"`
	Email            string `json:"email" validate:"omitempty,email"`
	BirthDate        string `json:"birth_date" validate:"omitempty"` // Format: YYYY-MM-DD
	Gender           string `json:"gender" validate:"omitempty"`
	BloodGroup       string `json:"blood_group" validate:"omitempty"`
	Address          string `json:"address" validate:"omitempty"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID               uuid.UUID `json:"id"`
	PhoneNumber      string    `json:"phone_number"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email,omitempty"`
	BirthDate        string    `json:"birth_date,omitempty"`
	Gender           string    `json:"gender,omitempty"`
	BloodGroup       string    `json:"blood_group,omitempty"`
	Address          string    `json:"address,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	IsGuest          bool      `json:"is_guest"`
	CreatedAt        time.Time `json:"created_at"`
}

type RegisterPatientResponse struct {
	Success   bool             `json:"success"`
	PatientID uuid.UUID        `json:"patientId"`
	Patient   *PatientResponse `json:"patient"`
}

type CheckPatientResponse struct {
	Exists  bool             `json:"exists"`
	Patient *PatientResponse `json:"patient,omitempty"`
	Message string           `json:"message,omitempty"`
}
