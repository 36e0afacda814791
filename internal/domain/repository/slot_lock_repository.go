package repository

import (
	"time"

	"hospital-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SlotLockRepository interface {
	Create(db *gorm.DB, lock *entity.TimeSlotLock) error
	// FindActiveBySlot returns unexpired locks for the triple, strictly
	// expires_at > now.
	FindActiveBySlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string, now time.Time) ([]entity.TimeSlotLock, error)
	FindActiveByDoctorDate(db *gorm.DB, doctorID uuid.UUID, date time.Time, now time.Time) ([]entity.TimeSlotLock, error)
	// DeleteByHolder removes only the holder's own lock rows for the
	// triple; other holders' locks are untouched.
	DeleteByHolder(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string, holder string) (int64, error)
	// DeleteBySlot removes every lock row for the triple, regardless of
	// holder. Used once a confirmed appointment supersedes the lock.
	DeleteBySlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string) (int64, error)
	// DeleteExpiredBySlot clears expired rows for one triple so a fresh
	// lock can be inserted under the unique index.
	DeleteExpiredBySlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string, now time.Time) (int64, error)
	// DeleteExpiredBefore bulk-deletes rows whose expires_at is older
	// than the cutoff. Used by the background sweeper.
	DeleteExpiredBefore(db *gorm.DB, cutoff time.Time) (int64, error)
}
