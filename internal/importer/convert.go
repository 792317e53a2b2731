package importer

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/itinerary"
)

// ToDomain converts a validated TripDocument into a Trip. Missing ids are
// generated, missing start times become domain.DefaultStartTime and missing
// durations domain.DefaultDurationMin.
// Call ValidateTripDocument first; ToDomain assumes the document is valid.
func ToDomain(doc *TripDocument) (domain.Trip, error) {
	startDate, err := time.Parse(domain.DateLayout, doc.StartDate)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("parsing start_date: %w", err)
	}

	trip := domain.Trip{
		ID:        domain.CoalesceStr(doc.ID, itinerary.NewID()),
		Title:     doc.Title,
		StartDate: startDate,
		Days:      make([]domain.Day, 0, len(doc.Days)),
	}

	for i, d := range doc.Days {
		date, err := time.Parse(domain.DateLayout, d.Date)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("parsing days[%d].date: %w", i, err)
		}
		day := domain.Day{
			ID:    domain.CoalesceStr(d.ID, itinerary.NewID()),
			Date:  date,
			Label: domain.CoalesceStr(d.Label, fmt.Sprintf("Day %d", i+1)),
			Stops: make([]domain.Stop, 0, len(d.Stops)),
		}
		for j, s := range d.Stops {
			stop, err := toStop(s)
			if err != nil {
				return domain.Trip{}, fmt.Errorf("converting days[%d].stops[%d]: %w", i, j, err)
			}
			day.Stops = append(day.Stops, stop)
		}
		trip.Days = append(trip.Days, day)
	}

	if errs := itinerary.Validate(trip); len(errs) > 0 {
		return domain.Trip{}, errors.Join(errs...)
	}
	return trip, nil
}

func toStop(s StopDocument) (domain.Stop, error) {
	start, err := domain.ParseClock(domain.StrFromPtr(domain.DefaultStartTime.String(), s.StartTime))
	if err != nil {
		return domain.Stop{}, err
	}
	duration := domain.DefaultDurationMin
	if s.Duration != nil {
		duration = *s.Duration
	}
	return domain.Stop{
		ID:           domain.CoalesceStr(s.ID, itinerary.NewID()),
		Name:         s.Name,
		Category:     domain.ParseCategory(s.Category),
		StartTime:    start,
		DurationMin:  duration,
		TicketInfo:   s.TicketInfo,
		Remarks:      s.Remarks,
		Expenses:     s.Expenses,
		ExternalLink: s.ExternalLink,
	}, nil
}

// FromDomain converts a Trip into its interchange form. Every stop carries
// its authored start time, so a round trip is lossless.
func FromDomain(trip domain.Trip) *TripDocument {
	doc := &TripDocument{
		ID:        trip.ID,
		Title:     trip.Title,
		StartDate: trip.StartDate.Format(domain.DateLayout),
		Days:      make([]DayDocument, 0, len(trip.Days)),
	}
	for _, d := range trip.Days {
		day := DayDocument{
			ID:    d.ID,
			Date:  d.Date.Format(domain.DateLayout),
			Label: d.Label,
			Stops: make([]StopDocument, 0, len(d.Stops)),
		}
		for _, s := range d.Stops {
			start := s.StartTime.String()
			duration := s.DurationMin
			day.Stops = append(day.Stops, StopDocument{
				ID:           s.ID,
				Name:         s.Name,
				Category:     string(s.Category),
				StartTime:    &start,
				Duration:     &duration,
				TicketInfo:   s.TicketInfo,
				Remarks:      s.Remarks,
				Expenses:     s.Expenses,
				ExternalLink: s.ExternalLink,
			})
		}
		doc.Days = append(doc.Days, day)
	}
	return doc
}
