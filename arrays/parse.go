package arrays

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseNumber converts s to a float64.
//
// Surrounding whitespace (including the U+FEFF byte-order mark) is
// ignored. Decimal, exponent and the unsigned 0x/0o/0b integer forms are
// accepted; values too large for float64 become ±Inf. Go-only syntax such
// as hex floats ("0x1p4") and digit separators ("1_0") is rejected.
//
// Errors:
//   - ErrEmptyInput  — s is empty or only whitespace.
//   - ErrNotANumber  — s is not a number, or is NaN (wrapped with s).
func ParseNumber(s string) (float64, error) {
	trimmed := strings.TrimFunc(s, isBlank)
	if trimmed == "" {
		return 0, ErrEmptyInput
	}
	if strings.ContainsRune(trimmed, '_') {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	// Radix literals never reach ParseFloat, which would also take hex floats.
	if hasRadixPrefix(strings.TrimLeft(trimmed, "+-")) {
		v, ok := parseRadixInt(trimmed)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
		}

		return v, nil
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	return v, nil
}

// isBlank reports the runes stripped around a number.
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// hasRadixPrefix reports whether s starts with 0x, 0o or 0b in either case.
func hasRadixPrefix(s string) bool {
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}

	return false
}

// parseRadixInt handles unsigned "0x", "0o" and "0b" literals. A sign is
// not allowed.
func parseRadixInt(s string) (float64, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, false
	}
	var base int
	switch s[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return 0, false
	}
	u, err := strconv.ParseUint(s[2:], base, 64)
	if err != nil {
		return 0, false
	}

	return float64(u), true
}

// lenientNumber is ParseNumber with every failure, and zero, mapped to 0.
func lenientNumber(s string) float64 {
	v, err := ParseNumber(s)
	if err != nil || v == 0 {
		return 0
	}

	return v
}
