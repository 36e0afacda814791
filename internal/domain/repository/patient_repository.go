package repository

import (
	"hospital-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
	// FindByPhone looks up a patient by canonical 10-digit phone number.
	FindByPhone(db *gorm.DB, phoneNumber string) (*entity.Patient, error)
}
