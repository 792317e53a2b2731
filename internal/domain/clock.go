package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the modulus for wall-clock arithmetic.
const MinutesPerDay = 24 * 60

// Clock is a wall-clock time of day stored as minutes since midnight,
// always in [0, MinutesPerDay).
type Clock int

// DefaultStartTime is the authored start assigned to stops that arrive
// without one.
const DefaultStartTime Clock = 9 * 60

// NewClock builds a Clock from hours and minutes, wrapping at midnight.
func NewClock(hour, minute int) Clock {
	return Clock(0).Add(hour*60 + minute)
}

// ParseClock parses "HH:MM" (24-hour, single-digit hour accepted).
func ParseClock(s string) (Clock, error) {
	trimmed := strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(trimmed, ":")
	if !ok {
		return 0, fmt.Errorf("%w: time %q must be HH:MM", ErrValidation, s)
	}
	if !isDigits(hh, 1, 2) {
		return 0, fmt.Errorf("%w: time %q has an invalid hour", ErrValidation, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h > 23 {
		return 0, fmt.Errorf("%w: time %q has an invalid hour", ErrValidation, s)
	}
	if !isDigits(mm, 2, 2) {
		return 0, fmt.Errorf("%w: time %q must be HH:MM", ErrValidation, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m > 59 {
		return 0, fmt.Errorf("%w: time %q has an invalid minute", ErrValidation, s)
	}
	return Clock(h*60 + m), nil
}

// isDigits reports whether s is between lo and hi ASCII digits long.
func isDigits(s string, lo, hi int) bool {
	if len(s) < lo || len(s) > hi {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Add returns c advanced by minutes, modulo 24 hours. Negative values wrap
// backwards past midnight. No date is tracked.
func (c Clock) Add(minutes int) Clock {
	total := (int(c) + minutes) % MinutesPerDay
	if total < 0 {
		total += MinutesPerDay
	}
	return Clock(total)
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// String formats the clock as zero-padded "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
