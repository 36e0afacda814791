package timeslot

import (
	"reflect"
	"testing"
	"time"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"minutes only", "10:00", "10:00:00", false},
		{"with seconds", "10:00:00", "10:00:00", false},
		{"single digit hour", "8:30", "08:30:00", false},
		{"nonzero seconds dropped", "14:20:59", "14:20:00", false},
		{"garbage", "ten o'clock", "", true},
		{"hour out of range", "24:00", "", true},
		{"minute out of range", "10:60", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonical(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Canonical(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	got, err := Label("09:30:00")
	if err != nil {
		t.Fatalf("Label error = %v", err)
	}
	if got != "09:30" {
		t.Errorf("Label(09:30:00) = %q, want 09:30", got)
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		duration int
		excluded map[string]bool
		want     []string
	}{
		{
			name:     "booked slot excluded",
			start:    "08:00",
			end:      "09:00",
			duration: 20,
			excluded: map[string]bool{"08:20": true},
			want:     []string{"08:00", "08:40"},
		},
		{
			name:     "no exclusions",
			start:    "08:00",
			end:      "09:00",
			duration: 30,
			excluded: nil,
			want:     []string{"08:00", "08:30"},
		},
		{
			name:     "exclusion keyed with seconds",
			start:    "10:00",
			end:      "11:00",
			duration: 30,
			excluded: map[string]bool{"10:30:00": true},
			want:     []string{"10:00"},
		},
		{
			name:     "end not emitted",
			start:    "08:00",
			end:      "08:40",
			duration: 20,
			excluded: nil,
			want:     []string{"08:00", "08:20"},
		},
		{
			name:     "start with seconds",
			start:    "08:00:00",
			end:      "08:30:00",
			duration: 15,
			excluded: nil,
			want:     []string{"08:00", "08:15"},
		},
		{
			name:     "empty window",
			start:    "09:00",
			end:      "09:00",
			duration: 20,
			excluded: nil,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.start, tt.end, tt.duration, tt.excluded)
			if err != nil {
				t.Fatalf("Generate error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Generate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	excluded := map[string]bool{"08:20": true}
	first, err := Generate("08:00", "09:00", 20, excluded)
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Generate("08:00", "09:00", 20, excluded)
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Generate not deterministic: %v vs %v", first, again)
		}
	}
}

func TestGenerate_InvalidDuration(t *testing.T) {
	if _, err := Generate("08:00", "09:00", 0, nil); err == nil {
		t.Error("Generate with zero duration expected error")
	}
}

func TestFilterPast(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 30, 45, 0, time.UTC)
	slots := []string{"10:00", "10:30", "10:31", "11:00"}

	got := FilterPast(slots, now)
	want := []string{"10:31", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterPast = %v, want %v", got, want)
	}
}

func TestFilterPast_ExactMinuteExcluded(t *testing.T) {
	// A slot equal to the current minute is already in the past.
	now := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	got := FilterPast([]string{"10:30"}, now)
	if len(got) != 0 {
		t.Errorf("FilterPast kept the current minute: %v", got)
	}
}
