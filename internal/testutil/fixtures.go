package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/google/uuid"
)

// TripStart is the start date used by fixture trips.
var TripStart = time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

// Stop options
type StopOption func(*domain.Stop)

func WithCategory(c domain.Category) StopOption {
	return func(s *domain.Stop) {
		s.Category = c
	}
}

func WithStart(hour, minute int) StopOption {
	return func(s *domain.Stop) {
		s.StartTime = domain.NewClock(hour, minute)
	}
}

func WithDuration(min int) StopOption {
	return func(s *domain.Stop) {
		s.DurationMin = min
	}
}

func WithRemarks(r string) StopOption {
	return func(s *domain.Stop) {
		s.Remarks = r
	}
}

func WithStopID(id string) StopOption {
	return func(s *domain.Stop) {
		s.ID = id
	}
}

func WithLink(link string) StopOption {
	return func(s *domain.Stop) {
		s.ExternalLink = link
	}
}

func NewTestStop(name string, opts ...StopOption) domain.Stop {
	s := domain.Stop{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    domain.CategorySight,
		StartTime:   domain.DefaultStartTime,
		DurationMin: domain.DefaultDurationMin,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Trip options
type TripOption func(*domain.Trip)

// WithDay appends a day holding stops, dated after the previous day.
func WithDay(id string, stops ...domain.Stop) TripOption {
	return func(t *domain.Trip) {
		n := len(t.Days)
		t.Days = append(t.Days, domain.Day{
			ID:    id,
			Date:  t.StartDate.AddDate(0, 0, n),
			Label: fmt.Sprintf("Day %d", n+1),
			Stops: stops,
		})
	}
}

func WithTitle(title string) TripOption {
	return func(t *domain.Trip) {
		t.Title = title
	}
}

func WithStartDate(d time.Time) TripOption {
	return func(t *domain.Trip) {
		t.StartDate = d
	}
}

// NewTestTrip builds a trip. Without WithDay options it has one empty day
// with id "day-1".
func NewTestTrip(opts ...TripOption) domain.Trip {
	t := domain.Trip{
		ID:        uuid.New().String(),
		Title:     "Test Trip",
		StartDate: TripStart,
	}
	for _, opt := range opts {
		opt(&t)
	}
	if len(t.Days) == 0 {
		WithDay("day-1")(&t)
	}
	return t
}

// SeqIDs returns a deterministic id generator yielding prefix-1, prefix-2, ...
func SeqIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
