package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents a doctor shown on the public listing
type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FullName       string    `gorm:"type:varchar(255);not null;index" json:"full_name"`
	Specialization string    `gorm:"type:varchar(255)" json:"specialization,omitempty"`
	Bio            string    `gorm:"type:text" json:"bio,omitempty"`
	ImageURL       string    `gorm:"type:text" json:"image_url,omitempty"`
	InstagramURL   string    `gorm:"type:text" json:"instagram_url,omitempty"`
	FacebookURL    string    `gorm:"type:text" json:"facebook_url,omitempty"`
	PhoneNumber    string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	IsActive       *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Schedules    []DoctorSchedule `gorm:"foreignKey:DoctorID" json:"schedules,omitempty"`
	Appointments []Appointment    `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorFilter holds optional search criteria for the public listing
type DoctorFilter struct {
	Name           string
	Specialization string
}
