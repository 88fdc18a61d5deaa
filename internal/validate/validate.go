// Package validate holds the client-side form rules shared by the
// registration and property screens. Rules are shape-only: the backend is
// the authority on anything deeper (checksums, uniqueness, calendars).
package validate

import (
	"strconv"
	"strings"

	"github.com/turgho/aluguei-cli/internal/mask"
)

// StateCodes are the 27 Brazilian state abbreviations accepted by the
// property form.
var StateCodes = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA",
	"MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN",
	"RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// HasAll reports whether every value is non-empty after trimming.
// Each form passes its own required set.
func HasAll(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// IsState reports whether code is a complete valid state abbreviation.
func IsState(code string) bool {
	for _, s := range StateCodes {
		if s == code {
			return true
		}
	}
	return false
}

// IsStatePrefix accepts in-progress state input: empty and one-character
// prefixes of at least one valid code pass, so typing is never rejected
// prematurely. A terminal two-character code must be a full member of the
// set; anything longer fails.
func IsStatePrefix(s string) bool {
	if s == "" {
		return true
	}
	if len(s) > 2 {
		return false
	}
	if len(s) == 2 {
		return IsState(s)
	}
	for _, code := range StateCodes {
		if strings.HasPrefix(code, s) {
			return true
		}
	}
	return false
}

// IsCPF reports whether s holds exactly 11 digits once mask characters are
// stripped. No checksum is computed.
func IsCPF(s string) bool {
	return len(mask.Digits(s)) == 11
}

// IsPhone reports whether s holds 10 or 11 national digits once mask
// characters are stripped.
func IsPhone(s string) bool {
	n := len(mask.Digits(s))
	return n == 10 || n == 11
}

// ParseCount converts an optional numeric field at submission time.
// Empty input defaults to zero; malformed input is an error.
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
