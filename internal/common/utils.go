package common

import (
	"strconv"
	"strings"
)

// WipeByteArray zeroes b in place. Safe to call with nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// NormalizeEmail is the single boundary through which every email passes
// before it is stored or compared.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CoerceAge parses s as an age. Non-numeric input and negative values
// become 0.
func CoerceAge(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
