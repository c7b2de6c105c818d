package utils

import (
	"strconv"
	"strings"
)

// Form clients send every field as a string, so numeric survey answers arrive
// as "" when unanswered. Sanitizers map "" to nil rather than 0 so the
// database can tell "not asked" from "answered zero".

func NullableInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func NullableFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// NullableString maps empty or whitespace-only input to nil. Used for
// value-constrained columns (gender, canal zone) where "" would violate the
// allowed set.
func NullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// IntOrZero is for residency components, which default to 0 when absent.
func IntOrZero(s string) int {
	n, err := NullableInt(s)
	if err != nil || n == nil {
		return 0
	}
	return *n
}

// FloatOrZero is for altitude, which defaults to 0.0 when absent.
func FloatOrZero(s string) float64 {
	f, err := NullableFloat(s)
	if err != nil || f == nil {
		return 0
	}
	return *f
}
