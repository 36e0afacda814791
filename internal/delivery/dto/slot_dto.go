package dto

import "time"

// Lock actions accepted by the check-slot endpoint. An empty action is
// a read-only availability check.
const (
	SlotActionReserve = "reserve"
	SlotActionRelease = "release"
)

// Request DTOs

type CheckSlotRequest struct {
	Action    string `json:"action" validate:"omitempty,oneof=reserve release"`
	UserID    string `json:"userId" validate:"omitempty,max=255"`
	SessionID string `json:"sessionId" validate:"omitempty,max=255"`
}

// Holder returns the caller's opaque lock identity, preferring the
// explicit user id over the browser session id.
func (r *CheckSlotRequest) Holder() string {
	if r.UserID != "" {
		return r.UserID
	}
	return r.SessionID
}

// Response DTOs

type SlotConflictAppointment struct {
	PatientName  string `json:"patient_name"`
	PatientPhone string `json:"patient_phone"`
}

type CheckSlotResponse struct {
	Success     bool                     `json:"success"`
	Available   bool                     `json:"available"`
	Released    bool                     `json:"released,omitempty"`
	Code        string                   `json:"code,omitempty"`
	Message     string                   `json:"message,omitempty"`
	LockID      string                   `json:"lockId,omitempty"`
	LockedBy    string                   `json:"lockedBy,omitempty"`
	ExpiresAt   *time.Time               `json:"expiresAt,omitempty"`
	Appointment *SlotConflictAppointment `json:"appointment,omitempty"`
}

type AvailableSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
	Total int      `json:"total"`
}
