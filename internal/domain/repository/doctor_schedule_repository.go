package repository

import (
	"hospital-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorScheduleRepository interface {
	Create(db *gorm.DB, schedule *entity.DoctorSchedule) error
	FindByID(db *gorm.DB, id int) (*entity.DoctorSchedule, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorSchedule, error)
	// FindActiveByDoctorAndWeekday returns the active working windows for
	// one weekday (0=Sunday .. 6=Saturday), ordered by start time.
	FindActiveByDoctorAndWeekday(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) ([]entity.DoctorSchedule, error)
	Update(db *gorm.DB, schedule *entity.DoctorSchedule) error
	Delete(db *gorm.DB, id int) (int64, error)
}
