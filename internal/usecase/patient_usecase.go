package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-booking-service/internal/converter"
	"hospital-booking-service/internal/delivery/dto"
	"hospital-booking-service/internal/domain/entity"
	"hospital-booking-service/internal/domain/repository"
	"hospital-booking-service/internal/service"
	"hospital-booking-service/pkg/phone"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPhoneAlreadyRegistered = errors.New("phone number is already registered")

type PatientUsecase interface {
	CheckByPhone(ctx context.Context, rawPhone string) (*dto.CheckPatientResponse, error)
	Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegisterPatientResponse, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

// CheckByPhone looks up a patient by phone number so the booking form
// can prefill known details.
func (u *patientUsecase) CheckByPhone(ctx context.Context, rawPhone string) (*dto.CheckPatientResponse, error) {
	normalized, err := phone.Normalize(rawPhone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}

	patient, err := u.patientRepo.FindByPhone(u.db.WithContext(ctx), normalized)
	if err != nil {
		u.log.Warnf("Failed to find patient by phone: %+v", err)
		return nil, err
	}
	if patient == nil {
		return &dto.CheckPatientResponse{Exists: false, Message: "patient not found"}, nil
	}

	return &dto.CheckPatientResponse{
		Exists:  true,
		Patient: converter.PatientToResponse(patient),
	}, nil
}

// Register creates a guest patient record keyed by phone number. A
// guest without an email gets the synthetic guest address so downstream
// notification plumbing always has something to send to.
func (u *patientUsecase) Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.RegisterPatientResponse, error) {
	normalized, err := phone.Normalize(req.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		birthDate = &parsed
	}

	email := req.Email
	if email == "" {
		email = entity.GuestEmail(normalized)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := &entity.Patient{
		PhoneNumber:      normalized,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            email,
		BirthDate:        birthDate,
		Gender:           req.Gender,
		BloodGroup:       req.BloodGroup,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		IsGuest:          true,
		GuestIdentifier:  uuid.New().String(),
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		if isDuplicateKeyError(err, "phone") {
			return nil, ErrPhoneAlreadyRegistered
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, nil, entity.AuditActionPatientRegistered, "patient", patient.ID.String(), map[string]interface{}{
		"phone": normalized,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.RegisterPatientResponse{
		Success:   true,
		PatientID: patient.ID,
		Patient:   converter.PatientToResponse(patient),
	}, nil
}
