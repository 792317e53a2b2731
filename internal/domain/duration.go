package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	iso8601 "github.com/senseyeio/duration"
)

const (
	// MinDurationMin is the floor every stop duration is clamped to.
	MinDurationMin = 15
	// DefaultDurationMin is used when a new stop arrives without a duration.
	DefaultDurationMin = 60
	// DurationStepMin is the increment used by the +/- duration controls.
	DurationStepMin = 15
)

// ClampDuration enforces the duration floor.
func ClampDuration(minutes int) int {
	if minutes < MinDurationMin {
		return MinDurationMin
	}
	return minutes
}

// isoAnchor is the reference instant ISO-8601 durations are shifted from.
// Calendar components (P1M) are resolved against it.
var isoAnchor = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// ParseDurationMinutes coerces user or generator input into whole minutes.
// Accepted forms: "90", "1h30m" and "PT1H30M". Seconds are truncated.
// The result is not clamped; callers apply ClampDuration.
func ParseDurationMinutes(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: duration is empty", ErrValidation)
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		return n, nil
	}

	if d, err := time.ParseDuration(trimmed); err == nil {
		return int(d / time.Minute), nil
	}

	if strings.HasPrefix(strings.ToUpper(trimmed), "P") && strings.ContainsAny(trimmed, "0123456789") {
		d, err := iso8601.ParseISO8601(strings.ToUpper(trimmed))
		if err == nil {
			return int(d.Shift(isoAnchor).Sub(isoAnchor) / time.Minute), nil
		}
	}

	return 0, fmt.Errorf("%w: duration %q is not a number of minutes", ErrValidation, s)
}
