package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a registered or guest patient record. PhoneNumber
// is always the canonical 10-digit local form and identifies the
// patient uniquely.
type Patient struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PhoneNumber      string     `gorm:"type:varchar(10);uniqueIndex;not null" json:"phone_number"`
	FirstName        string     `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName         string     `gorm:"type:varchar(255);not null" json:"last_name"`
	Email            string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	BirthDate        *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Gender           string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	BloodGroup       string     `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	Address          string     `gorm:"type:text" json:"address,omitempty"`
	EmergencyContact string     `gorm:"type:varchar(255)" json:"emergency_contact,omitempty"`
	IsGuest          bool       `gorm:"not null;default:true" json:"is_guest"`
	GuestIdentifier  string     `gorm:"type:varchar(64)" json:"-"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// GuestEmail builds the fallback address used when a guest registers
// without an email.
func GuestEmail(phoneNumber string) string {
	return phoneNumber + "@guest.hospital.com"
}
