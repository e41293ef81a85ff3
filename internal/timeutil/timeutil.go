// Package timeutil converts between "HH:MM" wall-clock strings and integer
// minute offsets from midnight. There is no day-overflow handling; callers
// own cross-midnight semantics.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Minutes parses an "HH:MM" string into minutes from midnight.
func Minutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time out of range: %q", s)
	}
	return hour*60 + minute, nil
}

// HHMM formats minutes from midnight as a zero-padded "HH:MM" string.
func HHMM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IsHHMM reports whether s is a well-formed zero-padded "HH:MM" string.
// Forms and flags validate with this before times enter the schedule, so the
// arithmetic helpers can assume well-formed input.
func IsHHMM(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := Minutes(s)
	return err == nil
}

// Compare orders two "HH:MM" strings by their minute value. Malformed values
// fall back to string comparison so a damaged document still sorts stably.
func Compare(a, b string) int {
	am, aerr := Minutes(a)
	bm, berr := Minutes(b)
	if aerr != nil || berr != nil {
		return strings.Compare(a, b)
	}
	switch {
	case am < bm:
		return -1
	case am > bm:
		return 1
	default:
		return 0
	}
}
