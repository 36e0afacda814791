package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// ActiveStatuses are the statuses that occupy a slot. At most one
// appointment with an active status may exist per doctor/date/time;
// the partial unique index on appointments enforces this.
var ActiveStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
}

// Appointment represents a confirmed patient booking for one slot.
// AppointmentTime is stored canonically as HH:MM:SS.
type Appointment struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	AppointmentDate  time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime  string            `gorm:"type:time;not null" json:"appointment_time"`
	PatientName      string            `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientPhone     string            `gorm:"type:varchar(10);not null;index" json:"patient_phone"`
	Status           AppointmentStatus `gorm:"type:varchar(20);not null;default:'confirmed';index" json:"status"`
	VerificationCode string            `gorm:"type:char(6);not null" json:"verification_code"`
	Metadata         JSON              `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsActive reports whether the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status == AppointmentStatusPending || a.Status == AppointmentStatusConfirmed
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
