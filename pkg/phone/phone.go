package phone

import (
	"fmt"
	"strings"
)

// Local mobile number rules:
//   - 9 digits starting with "7" (national format without the trunk zero)
//   - 10 digits starting with "07"
//
// The canonical stored form is always 10 digits with the leading zero.

// Digits strips everything except the ASCII digits 0-9 from the input.
// Digits from other scripts (e.g. Persian or Arabic-Indic numerals) are
// dropped rather than kept, so the result length is the digit count.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// Normalize validates a phone number and returns its canonical 10-digit
// form. The returned error message names the expected format and the
// actual digit count so it can be shown to the caller as-is.
func Normalize(raw string) (string, error) {
	digits := Digits(raw)

	if len(digits) != 9 && len(digits) != 10 {
		return "", fmt.Errorf("phone number must be 9 or 10 digits (got %d digits)", len(digits))
	}

	if len(digits) == 10 && !strings.HasPrefix(digits, "07") {
		return "", fmt.Errorf("10-digit phone number must start with 07 (starts with %s)", digits[:2])
	}

	if len(digits) == 9 && !strings.HasPrefix(digits, "7") {
		return "", fmt.Errorf("9-digit phone number must start with 7 (starts with %s)", digits[:1])
	}

	if len(digits) == 9 {
		return "0" + digits, nil
	}
	return digits, nil
}

// IsValid reports whether the input is an acceptable local mobile number.
func IsValid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}
