package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	FullName       string `json:"full_name" validate:"required,min=2"`
	Specialization string `json:"specialization" validate:"omitempty"`
	Bio            string `json:"bio" validate:"omitempty"`
	ImageURL       string `json:"image_url" validate:"omitempty,url"`
	InstagramURL   string `json:"instagram_url" validate:"omitempty,url"`
	FacebookURL    string `json:"facebook_url" validate:"omitempty,url"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	FullName       string `json:"full_name" validate:"omitempty,min=2"`
	Specialization string `json:"specialization" validate:"omitempty"`
	Bio            string `json:"bio" validate:"omitempty"`
	ImageURL       string `json:"image_url" validate:"omitempty,url"`
	InstagramURL   string `json:"instagram_url" validate:"omitempty,url"`
	FacebookURL    string `json:"facebook_url" validate:"omitempty,url"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty"`
	IsActive       *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	Specialization string    `json:"specialization,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	ImageURL       string    `json:"image_url,omitempty"`
	InstagramURL   string    `json:"instagram_url,omitempty"`
	FacebookURL    string    `json:"facebook_url,omitempty"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	IsActive       *bool     `json:"is_active,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
