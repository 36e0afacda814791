package usecase

import (
	"testing"

	"hospital-booking-service/internal/delivery/dto"
)

func TestBuildPatientMetadata(t *testing.T) {
	tests := []struct {
		name string
		req  dto.BookAppointmentRequest
		want map[string]string
	}{
		{
			name: "no optional fields",
			req:  dto.BookAppointmentRequest{PatientName: "Ahmad Rahimi", PatientPhone: "0791234567"},
			want: nil,
		},
		{
			name: "all optional fields",
			req: dto.BookAppointmentRequest{
				Email:            "a@example.com",
				BirthDate:        "1990-04-01",
				Gender:           "male",
				BloodGroup:       "O+",
				Address:          "Kabul",
				EmergencyContact: "0791111111",
			},
			want: map[string]string{
				"email":             "a@example.com",
				"birth_date":        "1990-04-01",
				"gender":            "male",
				"blood_group":       "O+",
				"address":           "Kabul",
				"emergency_contact": "0791111111",
			},
		},
		{
			name: "empty values skipped",
			req:  dto.BookAppointmentRequest{Email: "a@example.com", Gender: ""},
			want: map[string]string{"email": "a@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildPatientMetadata(&tt.req)

			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil metadata, got %v", got)
				}
				return
			}

			if len(got) != len(tt.want) {
				t.Fatalf("expected %d keys, got %d: %v", len(tt.want), len(got), got)
			}
			for key, want := range tt.want {
				if got[key] != want {
					t.Errorf("metadata[%q] = %v, want %q", key, got[key], want)
				}
			}
		})
	}
}
