package entity

import "testing"

func TestAppointmentStatusTransitions(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusConfirmed}

	if !a.IsActive() {
		t.Fatal("confirmed appointment should be active")
	}
	if a.IsCancelled() {
		t.Fatal("confirmed appointment should not be cancelled")
	}

	a.Cancel()

	if a.Status != AppointmentStatusCancelled {
		t.Fatalf("expected status cancelled, got %s", a.Status)
	}
	if a.IsActive() {
		t.Fatal("cancelled appointment should not be active")
	}
	if !a.IsCancelled() {
		t.Fatal("cancelled appointment should report cancelled")
	}
}

func TestAppointmentPendingIsActive(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusPending}
	if !a.IsActive() {
		t.Fatal("pending appointment should occupy its slot")
	}
}
