package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-booking-service/internal/delivery/dto"
	"hospital-booking-service/internal/domain/entity"
	"hospital-booking-service/internal/domain/repository"
	"hospital-booking-service/internal/service"
	"hospital-booking-service/pkg/timeslot"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrHolderRequired    = errors.New("userId or sessionId is required to reserve or release a slot")
)

// Conflict codes surfaced to slot pickers. They are expected, user-facing
// conditions: the caller re-polls the available slots and picks again.
const (
	CodeAlreadyBooked   = "ALREADY_BOOKED"
	CodeAlreadyReserved = "ALREADY_RESERVED"
)

type SlotLockUsecase interface {
	CheckSlot(ctx context.Context, doctorID uuid.UUID, date, slotTime string, req *dto.CheckSlotRequest) (*dto.CheckSlotResponse, error)
}

type slotLockUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	lockRepo          repository.SlotLockRepository
	appointmentRepo   repository.AppointmentRepository
	availabilityCache *service.AvailabilityCache
	lockTTL           time.Duration
}

func NewSlotLockUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	lockRepo repository.SlotLockRepository,
	appointmentRepo repository.AppointmentRepository,
	availabilityCache *service.AvailabilityCache,
	lockTTL time.Duration,
) SlotLockUsecase {
	return &slotLockUsecase{
		db:                db,
		log:               log,
		lockRepo:          lockRepo,
		appointmentRepo:   appointmentRepo,
		availabilityCache: availabilityCache,
		lockTTL:           lockTTL,
	}
}

// CheckSlot reports availability of one doctor/date/time triple and,
// depending on the action, reserves or releases a short-lived lock on it.
//
// The reserve path runs both conflict checks and the insert inside a
// single transaction. The unique index on the lock table is the
// authoritative guard: a duplicate-key failure on insert means another
// request reserved the slot between our check and our write, and is
// reported as ALREADY_RESERVED exactly as if the pre-check had caught it.
func (u *slotLockUsecase) CheckSlot(ctx context.Context, doctorID uuid.UUID, date, slotTime string, req *dto.CheckSlotRequest) (*dto.CheckSlotResponse, error) {
	dateVal, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	canonical, err := timeslot.Canonical(slotTime)
	if err != nil {
		return nil, timeslot.ErrInvalidTime
	}

	holder := req.Holder()
	if (req.Action == dto.SlotActionReserve || req.Action == dto.SlotActionRelease) && holder == "" {
		return nil, ErrHolderRequired
	}

	now := time.Now()

	switch req.Action {
	case dto.SlotActionRelease:
		return u.release(ctx, doctorID, dateVal, date, canonical, holder)
	case dto.SlotActionReserve:
		return u.reserve(ctx, doctorID, dateVal, date, canonical, holder, now)
	default:
		return u.check(ctx, u.db.WithContext(ctx), doctorID, dateVal, canonical, now)
	}
}

// check runs the two availability preconditions without mutating state.
// A nil response means the slot is free.
func (u *slotLockUsecase) check(ctx context.Context, db *gorm.DB, doctorID uuid.UUID, dateVal time.Time, canonical string, now time.Time) (*dto.CheckSlotResponse, error) {
	appointment, err := u.appointmentRepo.FindActiveBySlot(db, doctorID, dateVal, canonical)
	if err != nil {
		u.log.Warnf("Failed to check appointments for slot: %+v", err)
		return nil, err
	}
	if appointment != nil {
		return &dto.CheckSlotResponse{
			Success:   false,
			Available: false,
			Code:      CodeAlreadyBooked,
			Message:   "this time slot is already booked",
			Appointment: &dto.SlotConflictAppointment{
				PatientName:  appointment.PatientName,
				PatientPhone: appointment.PatientPhone,
			},
		}, nil
	}

	locks, err := u.lockRepo.FindActiveBySlot(db, doctorID, dateVal, canonical, now)
	if err != nil {
		u.log.Warnf("Failed to check locks for slot: %+v", err)
		return nil, err
	}
	if len(locks) > 0 {
		lock := locks[0]
		return &dto.CheckSlotResponse{
			Success:   false,
			Available: false,
			Code:      CodeAlreadyReserved,
			Message:   "this time slot is reserved by another visitor",
			LockedBy:  lock.LockedBy,
			ExpiresAt: &lock.ExpiresAt,
		}, nil
	}

	return &dto.CheckSlotResponse{Success: true, Available: true}, nil
}

func (u *slotLockUsecase) reserve(ctx context.Context, doctorID uuid.UUID, dateVal time.Time, date, canonical, holder string, now time.Time) (*dto.CheckSlotResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	resp, err := u.check(ctx, tx, doctorID, dateVal, canonical, now)
	if err != nil {
		return nil, err
	}
	if !resp.Available {
		return resp, nil
	}

	// Expired rows still occupy the unique index; clear them so a fresh
	// lock can take their place.
	if _, err := u.lockRepo.DeleteExpiredBySlot(tx, doctorID, dateVal, canonical, now); err != nil {
		u.log.Warnf("Failed to clear expired locks for slot: %+v", err)
		return nil, err
	}

	lock := &entity.TimeSlotLock{
		DoctorID:  doctorID,
		SlotDate:  dateVal,
		SlotTime:  canonical,
		LockedBy:  holder,
		ExpiresAt: now.Add(u.lockTTL),
	}

	if err := u.lockRepo.Create(tx, lock); err != nil {
		if isDuplicateKeyError(err, "uq_time_slot_locks_slot") {
			// Lost the race to a concurrent reserve.
			return &dto.CheckSlotResponse{
				Success:   false,
				Available: false,
				Code:      CodeAlreadyReserved,
				Message:   "this time slot is reserved by another visitor",
			}, nil
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create slot lock: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.availabilityCache.Invalidate(ctx, doctorID, date)

	return &dto.CheckSlotResponse{
		Success:   true,
		Available: true,
		LockID:    lock.ID.String(),
		ExpiresAt: &lock.ExpiresAt,
	}, nil
}

func (u *slotLockUsecase) release(ctx context.Context, doctorID uuid.UUID, dateVal time.Time, date, canonical, holder string) (*dto.CheckSlotResponse, error) {
	// Deleting by holder makes release idempotent and harmless for other
	// holders' locks.
	deleted, err := u.lockRepo.DeleteByHolder(u.db.WithContext(ctx), doctorID, dateVal, canonical, holder)
	if err != nil {
		u.log.Warnf("Failed to release slot lock: %+v", err)
		return nil, err
	}

	if deleted > 0 {
		u.availabilityCache.Invalidate(ctx, doctorID, date)
	}

	return &dto.CheckSlotResponse{
		Success:   true,
		Available: true,
		Released:  true,
	}, nil
}
