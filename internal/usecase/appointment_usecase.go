package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-booking-service/internal/converter"
	"hospital-booking-service/internal/delivery/dto"
	"hospital-booking-service/internal/delivery/http/middleware"
	"hospital-booking-service/internal/domain/entity"
	"hospital-booking-service/internal/domain/repository"
	"hospital-booking-service/internal/service"
	"hospital-booking-service/pkg/phone"
	"hospital-booking-service/pkg/timeslot"
	"hospital-booking-service/pkg/verification"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTimeAlreadyBooked           = errors.New("this time slot is already booked")
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrInvalidPhone                = errors.New("invalid phone number")
	ErrDoctorNotFound              = errors.New("doctor not found")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, doctorID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.BookAppointmentResponse, error)
	ListForDoctorDate(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AppointmentListResponse, error)
	Cancel(ctx context.Context, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	lockRepo          repository.SlotLockRepository
	availabilityCache *service.AvailabilityCache
	auditService      service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	lockRepo repository.SlotLockRepository,
	availabilityCache *service.AvailabilityCache,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:                db,
		log:               log,
		appointmentRepo:   appointmentRepo,
		lockRepo:          lockRepo,
		availabilityCache: availabilityCache,
		auditService:      auditService,
	}
}

// Book converts a slot plus patient data into a confirmed appointment.
//
// The duplicate pre-check gives a friendly failure in the common case,
// but the partial unique index on active appointments is the
// authoritative guard: a duplicate-key failure on insert is translated
// to the same conflict. Any lock on the slot is superseded by the
// appointment and deleted.
func (u *appointmentUsecase) Book(ctx context.Context, doctorID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.BookAppointmentResponse, error) {
	dateVal, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	canonical, err := timeslot.Canonical(req.Time)
	if err != nil {
		return nil, timeslot.ErrInvalidTime
	}

	normalizedPhone, err := phone.Normalize(req.PatientPhone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}

	metadata := buildPatientMetadata(req)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.appointmentRepo.FindActiveBySlot(tx, doctorID, dateVal, canonical)
	if err != nil {
		u.log.Warnf("Failed to check existing appointment: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrTimeAlreadyBooked
	}

	code, err := verification.GenerateCode()
	if err != nil {
		u.log.Warnf("Failed to generate verification code: %+v", err)
		return nil, err
	}

	appointment := &entity.Appointment{
		DoctorID:         doctorID,
		AppointmentDate:  dateVal,
		AppointmentTime:  canonical,
		PatientName:      req.PatientName,
		PatientPhone:     normalizedPhone,
		Status:           entity.AppointmentStatusConfirmed,
		VerificationCode: code,
		Metadata:         metadata,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "uq_appointments_active_slot") {
			return nil, ErrTimeAlreadyBooked
		}
		if isForeignKeyError(err, "doctor") {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	// The appointment now owns the slot; every lock row for it is moot.
	if _, err := u.lockRepo.DeleteBySlot(tx, doctorID, dateVal, canonical); err != nil {
		u.log.Warnf("Failed to clear superseded locks: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, nil, entity.AuditActionAppointmentBooked, "appointment", appointment.ID.String(), map[string]interface{}{
		"doctor_id": doctorID.String(),
		"date":      req.Date,
		"time":      canonical,
		"phone":     normalizedPhone,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.availabilityCache.Invalidate(ctx, doctorID, req.Date)

	return &dto.BookAppointmentResponse{
		Success:     true,
		Appointment: converter.AppointmentToResponse(appointment),
	}, nil
}

// ListForDoctorDate returns the active appointments for one doctor and day.
func (u *appointmentUsecase) ListForDoctorDate(ctx context.Context, doctorID uuid.UUID, date string) (*dto.AppointmentListResponse, error) {
	dateVal, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointments, err := u.appointmentRepo.FindActiveByDoctorDate(u.db.WithContext(ctx), doctorID, dateVal)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %s on %s: %+v", doctorID, date, err)
		return nil, err
	}

	return converter.AppointmentsToListResponse(appointments), nil
}

// Cancel marks an appointment cancelled, freeing its slot.
func (u *appointmentUsecase) Cancel(ctx context.Context, appointmentID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.Cancel(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentAlreadyCancelled
	}

	if err := u.auditService.LogUpdate(ctx, tx, userIDFromContext(ctx), entity.AuditActionAppointmentCancel, "appointment", appointmentID.String(), string(appointment.Status), string(entity.AppointmentStatusCancelled)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.availabilityCache.Invalidate(ctx, appointment.DoctorID, appointment.AppointmentDate.Format("2006-01-02"))

	return nil
}

// userIDFromContext returns the authenticated staff user id, or nil
// for unauthenticated (public) requests.
func userIDFromContext(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}

// buildPatientMetadata collects the optional extended attributes into
// the jsonb metadata payload, skipping empty values.
func buildPatientMetadata(req *dto.BookAppointmentRequest) entity.JSON {
	metadata := entity.JSON{}
	fields := map[string]string{
		"email":             req.Email,
		"birth_date":        req.BirthDate,
		"gender":            req.Gender,
		"blood_group":       req.BloodGroup,
		"address":           req.Address,
		"emergency_contact": req.EmergencyContact,
	}
	for key, value := range fields {
		if value != "" {
			metadata[key] = value
		}
	}
	if len(metadata) == 0 {
		return nil
	}
	return metadata
}
