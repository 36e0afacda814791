package entity

import (
	"testing"
	"time"
)

func TestTimeSlotLockIsActive(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"expires in the future", now.Add(5 * time.Minute), true},
		{"expires one second ahead", now.Add(time.Second), true},
		{"expires exactly now", now, false},
		{"expired one second ago", now.Add(-time.Second), false},
		{"long expired", now.Add(-24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lock := &TimeSlotLock{ExpiresAt: tt.expiresAt}
			if got := lock.IsActive(now); got != tt.want {
				t.Errorf("IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}
