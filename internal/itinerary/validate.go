package itinerary

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/waypoint/internal/domain"
)

// ErrNoDays is returned for a trip without any day.
var ErrNoDays = errors.New("trip has no days")

// Validate checks the structural invariants of a trip and returns every
// violation found. An empty result means the trip is usable.
func Validate(trip domain.Trip) []error {
	var errs []error
	if len(trip.Days) == 0 {
		errs = append(errs, ErrNoDays)
	}

	dayIDs := make(map[string]bool, len(trip.Days))
	stopIDs := make(map[string]bool)
	for i, day := range trip.Days {
		switch {
		case day.ID == "":
			errs = append(errs, fmt.Errorf("%w: day %d has no id", domain.ErrValidation, i+1))
		case dayIDs[day.ID]:
			errs = append(errs, fmt.Errorf("%w: duplicate day id %q", domain.ErrValidation, day.ID))
		}
		dayIDs[day.ID] = true

		for j, s := range day.Stops {
			switch {
			case s.ID == "":
				errs = append(errs, fmt.Errorf("%w: day %q stop %d has no id", domain.ErrValidation, day.ID, j+1))
			case stopIDs[s.ID]:
				errs = append(errs, fmt.Errorf("%w: duplicate stop id %q", domain.ErrValidation, s.ID))
			}
			stopIDs[s.ID] = true

			if s.DurationMin < domain.MinDurationMin {
				errs = append(errs, fmt.Errorf("%w: stop %q duration %d is below %d minutes",
					domain.ErrValidation, s.ID, s.DurationMin, domain.MinDurationMin))
			}
		}
	}
	return errs
}
