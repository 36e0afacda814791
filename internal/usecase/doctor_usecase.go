package usecase

import (
	"context"
	"errors"

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

var ErrDoctorHasAppointments = errors.New("doctor still has appointments and cannot be deleted")

type DoctorUsecase interface {
	List(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

// List returns active doctors for the public listing, optionally
// filtered by name or specialization.
func (u *doctorUsecase) List(ctx context.Context, filter *entity.DoctorFilter) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAllActive(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToListResponse(doctors), nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	phoneNumber := req.PhoneNumber
	if phoneNumber != "" {
		normalized, err := phone.Normalize(phoneNumber)
		if err == nil {
			phoneNumber = normalized
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := &entity.Doctor{
		FullName:       req.FullName,
		Specialization: req.Specialization,
		Bio:            req.Bio,
		ImageURL:       req.ImageURL,
		InstagramURL:   req.InstagramURL,
		FacebookURL:    req.FacebookURL,
		PhoneNumber:    phoneNumber,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, userIDFromContext(ctx), entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), doctor.FullName); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	oldName := doctor.FullName

	if req.FullName != "" {
		doctor.FullName = req.FullName
	}
	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}
	if req.Bio != "" {
		doctor.Bio = req.Bio
	}
	if req.ImageURL != "" {
		doctor.ImageURL = req.ImageURL
	}
	if req.InstagramURL != "" {
		doctor.InstagramURL = req.InstagramURL
	}
	if req.FacebookURL != "" {
		doctor.FacebookURL = req.FacebookURL
	}
	if req.PhoneNumber != "" {
		if normalized, err := phone.Normalize(req.PhoneNumber); err == nil {
			doctor.PhoneNumber = normalized
		} else {
			doctor.PhoneNumber = req.PhoneNumber
		}
	}
	if req.IsActive != nil {
		doctor.IsActive = req.IsActive
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor %s: %+v", id, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, userIDFromContext(ctx), entity.AuditActionDoctorUpdate, "doctor", id.String(), oldName, doctor.FullName); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	affected, err := u.doctorRepo.Delete(tx, id)
	if err != nil {
		if isForeignKeyError(err, "appointments") {
			return ErrDoctorHasAppointments
		}
		u.log.Warnf("Failed to delete doctor %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, userIDFromContext(ctx), entity.AuditActionDoctorDelete, "doctor", id.String(), doctor.FullName); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
