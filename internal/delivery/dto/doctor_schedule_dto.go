package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateScheduleRequest struct {
	DoctorID            uuid.UUID `json:"doctor_id" validate:"required"`
	DayOfWeek           *int      `json:"day_of_week" validate:"required,gte=0,lte=6"` // 0=Sunday .. 6=Saturday
	StartTime           string    `json:"start_time" validate:"required"`              // Format: HH:MM
	EndTime             string    `json:"end_time" validate:"required"`                // Format: HH:MM
	SlotDurationMinutes int       `json:"slot_duration_minutes" validate:"required,min=5,max=240"`
}

type UpdateScheduleRequest struct {
	DayOfWeek           *int   `json:"day_of_week" validate:"omitempty,gte=0,lte=6"`
	StartTime           string `json:"start_time" validate:"omitempty"`
	EndTime             string `json:"end_time" validate:"omitempty"`
	SlotDurationMinutes *int   `json:"slot_duration_minutes" validate:"omitempty,min=5,max=240"`
	IsActive            *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type ScheduleResponse struct {
	ID                  int             `json:"id"`
	DoctorID            uuid.UUID       `json:"doctor_id"`
	Doctor              *DoctorResponse `json:"doctor,omitempty"`
	DayOfWeek           int             `json:"day_of_week"`
	StartTime           string          `json:"start_time"`
	EndTime             string          `json:"end_time"`
	SlotDurationMinutes int             `json:"slot_duration_minutes"`
	IsActive            *bool           `json:"is_active,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}
