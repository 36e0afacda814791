package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlotLock is a short-lived advisory claim on one doctor/date/time
// triple, held while a patient fills in the registration form. It never
// creates an appointment by itself; the appointment uniqueness check at
// commit time is the binding gate. SlotTime is canonical HH:MM:SS.
type TimeSlotLock struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	SlotDate  time.Time `gorm:"type:date;not null;index" json:"slot_date"`
	SlotTime  string    `gorm:"type:time;not null" json:"slot_time"`
	LockedBy  string    `gorm:"type:varchar(255);not null" json:"locked_by"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (TimeSlotLock) TableName() string {
	return "time_slot_locks"
}

// IsActive reports whether the lock still holds at the given instant.
// The comparison is strict: a lock whose expires_at equals now is
// already expired. Expired rows are treated as absent everywhere; they
// are only physically removed by the background sweeper.
func (l *TimeSlotLock) IsActive(now time.Time) bool {
	return l.ExpiresAt.After(now)
}
