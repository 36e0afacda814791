package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hospital-booking-service/internal/converter"
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
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)

type DoctorScheduleUsecase interface {
	ListForDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error)
	GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error)
	Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id int) error
}

type doctorScheduleUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	scheduleRepo      repository.DoctorScheduleRepository
	doctorRepo        repository.DoctorRepository
	appointmentRepo   repository.AppointmentRepository
	lockRepo          repository.SlotLockRepository
	availabilityCache *service.AvailabilityCache
	auditService      service.AuditService
	location          *time.Location
}

func NewDoctorScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.DoctorScheduleRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	lockRepo repository.SlotLockRepository,
	availabilityCache *service.AvailabilityCache,
	auditService service.AuditService,
	location *time.Location,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		db:                db,
		log:               log,
		scheduleRepo:      scheduleRepo,
		doctorRepo:        doctorRepo,
		appointmentRepo:   appointmentRepo,
		lockRepo:          lockRepo,
		availabilityCache: availabilityCache,
		auditService:      auditService,
		location:          location,
	}
}

func (u *doctorScheduleUsecase) ListForDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.ScheduleListResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	schedules, err := u.scheduleRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list schedules for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	return converter.SchedulesToListResponse(schedules), nil
}

// GetAvailableSlots computes the open slot labels for one doctor/date:
// the weekly working windows for that weekday, minus active
// appointments and unexpired locks, minus already-passed times when the
// date is today in clinic-local time. The computed list is cached
// briefly to absorb polling from slot pickers.
func (u *doctorScheduleUsecase) GetAvailableSlots(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AvailableSlotsResponse, error) {
	dateVal, err := time.ParseInLocation("2006-01-02", date, u.location)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	if cached, ok := u.availabilityCache.Get(ctx, doctorID, date); ok {
		return &dto.AvailableSlotsResponse{Date: date, Slots: cached, Total: len(cached)}, nil
	}

	db := u.db.WithContext(ctx)
	now := time.Now().In(u.location)

	schedules, err := u.scheduleRepo.FindActiveByDoctorAndWeekday(db, doctorID, int(dateVal.Weekday()))
	if err != nil {
		u.log.Warnf("Failed to find schedules for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	excluded := map[string]bool{}

	appointments, err := u.appointmentRepo.FindActiveByDoctorDate(db, doctorID, dateVal)
	if err != nil {
		u.log.Warnf("Failed to find appointments for doctor %s on %s: %+v", doctorID, date, err)
		return nil, err
	}
	for _, appointment := range appointments {
		excluded[appointment.AppointmentTime] = true
	}

	locks, err := u.lockRepo.FindActiveByDoctorDate(db, doctorID, dateVal, time.Now())
	if err != nil {
		u.log.Warnf("Failed to find locks for doctor %s on %s: %+v", doctorID, date, err)
		return nil, err
	}
	for _, lock := range locks {
		excluded[lock.SlotTime] = true
	}

	slots := []string{}
	for _, schedule := range schedules {
		generated, err := timeslot.Generate(schedule.StartTime, schedule.EndTime, schedule.SlotDurationMinutes, excluded)
		if err != nil {
			u.log.Warnf("Skipping malformed schedule %d for doctor %s: %+v", schedule.ID, doctorID, err)
			continue
		}
		slots = append(slots, generated...)
	}

	if date == now.Format("2006-01-02") {
		slots = timeslot.FilterPast(slots, now)
	}

	u.availabilityCache.Set(ctx, doctorID, date, slots)

	return &dto.AvailableSlotsResponse{Date: date, Slots: slots, Total: len(slots)}, nil
}

func (u *doctorScheduleUsecase) Create(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	startTime, endTime, err := canonicalRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	schedule := &entity.DoctorSchedule{
		DoctorID:            req.DoctorID,
		DayOfWeek:           *req.DayOfWeek,
		StartTime:           startTime,
		EndTime:             endTime,
		SlotDurationMinutes: req.SlotDurationMinutes,
	}

	if err := u.scheduleRepo.Create(tx, schedule); err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, userIDFromContext(ctx), entity.AuditActionScheduleCreate, "schedule", strconv.Itoa(schedule.ID), map[string]interface{}{
		"doctor_id":   req.DoctorID.String(),
		"day_of_week": schedule.DayOfWeek,
		"start_time":  startTime,
		"end_time":    endTime,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) Update(ctx context.Context, id int, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", id, err)
		return nil, err
	}
	if schedule == nil {
		return nil, ErrScheduleNotFound
	}

	if req.DayOfWeek != nil {
		schedule.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != "" {
		canonical, err := timeslot.Canonical(req.StartTime)
		if err != nil {
			return nil, timeslot.ErrInvalidTime
		}
		schedule.StartTime = canonical
	}
	if req.EndTime != "" {
		canonical, err := timeslot.Canonical(req.EndTime)
		if err != nil {
			return nil, timeslot.ErrInvalidTime
		}
		schedule.EndTime = canonical
	}
	if req.SlotDurationMinutes != nil {
		schedule.SlotDurationMinutes = *req.SlotDurationMinutes
	}
	if req.IsActive != nil {
		schedule.IsActive = req.IsActive
	}

	startMinute, err := timeslot.MinuteOfDay(schedule.StartTime)
	if err != nil {
		return nil, timeslot.ErrInvalidTime
	}
	endMinute, err := timeslot.MinuteOfDay(schedule.EndTime)
	if err != nil {
		return nil, timeslot.ErrInvalidTime
	}
	if startMinute >= endMinute {
		return nil, ErrInvalidTimeRange
	}

	if err := u.scheduleRepo.Update(tx, schedule); err != nil {
		u.log.Warnf("Failed to update schedule %d: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, userIDFromContext(ctx), entity.AuditActionScheduleUpdate, "schedule", strconv.Itoa(id), nil, map[string]interface{}{
		"day_of_week": schedule.DayOfWeek,
		"start_time":  schedule.StartTime,
		"end_time":    schedule.EndTime,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ScheduleToResponse(schedule), nil
}

func (u *doctorScheduleUsecase) Delete(ctx context.Context, id int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	schedule, err := u.scheduleRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", id, err)
		return err
	}
	if schedule == nil {
		return ErrScheduleNotFound
	}

	affected, err := u.scheduleRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete schedule %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, userIDFromContext(ctx), entity.AuditActionScheduleDelete, "schedule", strconv.Itoa(id), map[string]interface{}{
		"doctor_id":   schedule.DoctorID.String(),
		"day_of_week": schedule.DayOfWeek,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// canonicalRange validates and canonicalizes a start/end pair.
func canonicalRange(start, end string) (string, string, error) {
	startTime, err := timeslot.Canonical(start)
	if err != nil {
		return "", "", timeslot.ErrInvalidTime
	}
	endTime, err := timeslot.Canonical(end)
	if err != nil {
		return "", "", timeslot.ErrInvalidTime
	}
	startMinute, _ := timeslot.MinuteOfDay(startTime)
	endMinute, _ := timeslot.MinuteOfDay(endTime)
	if startMinute >= endMinute {
		return "", "", ErrInvalidTimeRange
	}
	return startTime, endTime, nil
}
