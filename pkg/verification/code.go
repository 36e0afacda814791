package verification

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeLength is the number of digits in a patient verification code.
const CodeLength = 6

var codeMax = new(big.Int).Exp(big.NewInt(10), big.NewInt(CodeLength), nil)

// GenerateCode returns a 6-digit numeric string, zero-padded. The code
// is a patient-facing pickup reference, not a security credential, but
// crypto/rand is used so codes are not guessable in bulk.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeMax)
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n), nil
}
