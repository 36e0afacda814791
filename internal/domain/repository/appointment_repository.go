package repository

import (
	"time"

	"hospital-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindActiveBySlot returns the pending/confirmed appointment occupying
	// the given doctor/date/time, or nil if the slot is free.
	FindActiveBySlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string) (*entity.Appointment, error)
	FindActiveByDoctorDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	// Cancel atomically cancels an appointment ONLY if it's not already
	// cancelled. Returns affected rows: 1 = success, 0 = already cancelled.
	Cancel(db *gorm.DB, id uuid.UUID) (int64, error)
}
