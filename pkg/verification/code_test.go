package verification

import (
	"testing"
	"unicode"
)

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 200; i++ {
		code, err := GenerateCode()
		if err != nil {
			t.Fatalf("GenerateCode error = %v", err)
		}
		if len(code) != CodeLength {
			t.Fatalf("GenerateCode length = %d, want %d (code %q)", len(code), CodeLength, code)
		}
		for _, r := range code {
			if !unicode.IsDigit(r) {
				t.Fatalf("GenerateCode returned non-digit %q in %q", r, code)
			}
		}
		seen[code] = true
	}

	// 200 draws from a million-value space should essentially never
	// collapse to a single value.
	if len(seen) < 2 {
		t.Error("GenerateCode produced no variation across 200 draws")
	}
}
