package repository

import (
	"time"

	"hospital-booking-service/internal/domain/entity"
	domainRepo "hospital-booking-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type slotLockRepository struct{}

func NewSlotLockRepository() domainRepo.SlotLockRepository {
	return &slotLockRepository{}
}

func (r *slotLockRepository) Create(db *gorm.DB, lock *entity.TimeSlotLock) error {
	return db.Create(lock).Error
}

func (r *slotLockRepository) FindActiveBySlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string, now time.Time) ([]entity.TimeSlotLock, error) {
	var locks []entity.TimeSlotLock
	err := db.
		Where("doctor_id = ? AND slot_date = ? AND slot_time = ?", doctorID, date, slotTime).
		Where("expires_at > ?", now).
		Find(&locks).Error
	if err != nil {
		return nil, err
	}
	return locks, nil
}

func (r *slotLockRepository) FindActiveByDoctorDate(db *gorm.DB, doctorID uuid.UUID, date time.Time, now time.Time) ([]entity.TimeSlotLock, error) {
	var locks []entity.TimeSlotLock
	err := db.
		Where("doctor_id = ? AND slot_date = ?", doctorID, date).
		Where("expires_at > ?", now).
		Order("slot_time ASC").
		Find(&locks).Error
	if err != nil {
		return nil, err
	}
	return locks, nil
}

func (r *slotLockRepository) DeleteByHolder(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string, holder string) (int64, error) {
	result := db.
		Where("doctor_id = ? AND slot_date = ? AND slot_time = ? AND locked_by = ?", doctorID, date, slotTime, holder).
		Delete(&entity.TimeSlotLock{})
	return result.RowsAffected, result.Error
}

func (r *slotLockRepository) DeleteBySlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string) (int64, error) {
	result := db.
		Where("doctor_id = ? AND slot_date = ? AND slot_time = ?", doctorID, date, slotTime).
		Delete(&entity.TimeSlotLock{})
	return result.RowsAffected, result.Error
}

func (r *slotLockRepository) DeleteExpiredBySlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, slotTime string, now time.Time) (int64, error) {
	result := db.
		Where("doctor_id = ? AND slot_date = ? AND slot_time = ?", doctorID, date, slotTime).
		Where("expires_at <= ?", now).
		Delete(&entity.TimeSlotLock{})
	return result.RowsAffected, result.Error
}

func (r *slotLockRepository) DeleteExpiredBefore(db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.
		Where("expires_at < ?", cutoff).
		Delete(&entity.TimeSlotLock{})
	return result.RowsAffected, result.Error
}
