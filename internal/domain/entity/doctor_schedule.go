package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorSchedule defines one weekly working window for a doctor: the
// raw grid of candidate times before booked and locked slots are
// subtracted. Times are canonical HH:MM:SS.
type DoctorSchedule struct {
	ID                  int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID            uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DayOfWeek           int       `gorm:"not null;index" json:"day_of_week"` // 0=Sunday .. 6=Saturday
	StartTime           string    `gorm:"type:time;not null" json:"start_time"`
	EndTime             string    `gorm:"type:time;not null" json:"end_time"`
	SlotDurationMinutes int       `gorm:"not null" json:"slot_duration_minutes"`
	IsActive            *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}
