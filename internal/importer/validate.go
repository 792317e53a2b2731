package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/itinerary"
)

// ValidateTripDocument checks the document for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateTripDocument(doc *TripDocument) []error {
	var errs []error

	if strings.TrimSpace(doc.Title) == "" {
		errs = append(errs, fmt.Errorf("title is required"))
	}
	if doc.StartDate == "" {
		errs = append(errs, fmt.Errorf("start_date is required"))
	} else if _, err := time.Parse(domain.DateLayout, doc.StartDate); err != nil {
		errs = append(errs, fmt.Errorf("start_date: invalid date format %q (expected YYYY-MM-DD)", doc.StartDate))
	}
	if len(doc.Days) == 0 {
		errs = append(errs, fmt.Errorf("days: at least one day is required"))
	}

	dayIDs := make(map[string]bool)
	stopIDs := make(map[string]bool)
	for i, day := range doc.Days {
		prefix := fmt.Sprintf("days[%d]", i)
		errs = append(errs, validateDay(prefix, day, dayIDs)...)
		for j, stop := range day.Stops {
			errs = append(errs, validateStop(fmt.Sprintf("%s.stops[%d]", prefix, j), stop, stopIDs)...)
		}
	}

	return errs
}

func validateDay(prefix string, day DayDocument, seen map[string]bool) []error {
	var errs []error
	if day.ID != "" {
		if seen[day.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate day id %q", prefix, day.ID))
		}
		seen[day.ID] = true
	}
	if day.Date == "" {
		errs = append(errs, fmt.Errorf("%s.date is required", prefix))
	} else if _, err := time.Parse(domain.DateLayout, day.Date); err != nil {
		errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, day.Date))
	}
	return errs
}

func validateStop(prefix string, stop StopDocument, seen map[string]bool) []error {
	var errs []error
	if stop.ID != "" {
		if seen[stop.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate stop id %q", prefix, stop.ID))
		}
		seen[stop.ID] = true
	}
	if strings.TrimSpace(stop.Name) == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	if stop.StartTime != nil {
		if _, err := domain.ParseClock(*stop.StartTime); err != nil {
			errs = append(errs, fmt.Errorf("%s.start_time: %w", prefix, err))
		}
	}
	if stop.Duration != nil && *stop.Duration < domain.MinDurationMin {
		errs = append(errs, fmt.Errorf("%s.duration: must be at least %d minutes, got %d", prefix, domain.MinDurationMin, *stop.Duration))
	}
	if err := itinerary.ValidateLink(stop.ExternalLink); err != nil {
		errs = append(errs, fmt.Errorf("%s.external_link: %w", prefix, err))
	}
	return errs
}
