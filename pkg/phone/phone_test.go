package phone

import (
	"strings"
	"testing"
)

func TestNormalize_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"nine digits starting with 7", "700123456", "0700123456"},
		{"ten digits starting with 07", "0700123456", "0700123456"},
		{"nine digits with separators", "700-123-456", "0700123456"},
		{"ten digits with spaces", "07 00 12 34 56", "0700123456"},
		{"international punctuation stripped", "(0700) 123456", "0700123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_TenDigitIsIdentity(t *testing.T) {
	input := "0712345678"
	got, err := Normalize(input)
	if err != nil {
		t.Fatalf("Normalize(%q) error = %v", input, err)
	}
	if got != input {
		t.Errorf("Normalize(%q) = %q, expected identity", input, got)
	}
}

func TestNormalize_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantInMsg  string
		digitCount string
	}{
		{"too short", "12345", "9 or 10 digits", "5 digits"},
		{"too long", "07001234567", "9 or 10 digits", "11 digits"},
		{"empty", "", "9 or 10 digits", "0 digits"},
		{"nine digits bad prefix", "600123456", "must start with 7", ""},
		{"ten digits bad prefix", "0800123456", "must start with 07", ""},
		{"ten digits no trunk zero", "7001234567", "must start with 07", ""},
		{"persian digit mixed in", "0712345۶7", "9 or 10 digits", "8 digits"},
		{"all persian digits", "۷۰۰۱۲۳۴۵۶", "9 or 10 digits", "0 digits"},
		{"arabic indic digits", "٠٧٠٠١٢٣٤٥٦", "9 or 10 digits", "0 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.input)
			if err == nil {
				t.Fatalf("Normalize(%q) expected error", tt.input)
			}
			if !strings.Contains(err.Error(), tt.wantInMsg) {
				t.Errorf("Normalize(%q) error = %q, want it to mention %q", tt.input, err, tt.wantInMsg)
			}
			if tt.digitCount != "" && !strings.Contains(err.Error(), tt.digitCount) {
				t.Errorf("Normalize(%q) error = %q, want it to cite %q", tt.input, err, tt.digitCount)
			}
		})
	}
}

func TestDigits_KeepsASCIIOnly(t *testing.T) {
	got := Digits("07-12 ab ۳۴4")
	if got != "07124" {
		t.Errorf("Digits = %q, want %q", got, "07124")
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("0700123456") {
		t.Error("IsValid(0700123456) = false, want true")
	}
	if IsValid("12345") {
		t.Error("IsValid(12345) = true, want false")
	}
}
