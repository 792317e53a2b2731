package itinerary

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/waypoint/internal/domain"
	"github.com/alexanderramin/waypoint/internal/scheduler"
)

// Store is the editing session: the current trip plus the active day.
// Every mutation replaces the trip with the result of a pure operation.
// A Store is not safe for concurrent use; callers serialize access
// (the editor applies all mutations from its update loop).
type Store struct {
	trip      domain.Trip
	activeDay string
	newID     IDFunc
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDFunc overrides the id generator used for new days and stops.
func WithIDFunc(fn IDFunc) StoreOption {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewStore validates and copies the initial trip and activates its first day.
func NewStore(initial domain.Trip, opts ...StoreOption) (*Store, error) {
	if errs := Validate(initial); len(errs) > 0 {
		return nil, fmt.Errorf("invalid trip: %w", errors.Join(errs...))
	}
	s := &Store{
		trip:      initial.Clone(),
		activeDay: initial.Days[0].ID,
		newID:     NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Trip returns a copy of the current trip.
func (s *Store) Trip() domain.Trip {
	return s.trip.Clone()
}

func (s *Store) ActiveDayID() string {
	return s.activeDay
}

func (s *Store) ActiveDay() domain.Day {
	day, _ := s.trip.DayByID(s.activeDay)
	return day
}

// ActiveDayIndex returns the position of the active day within the trip.
func (s *Store) ActiveDayIndex() int {
	return s.trip.DayIndex(s.activeDay)
}

// SetActiveDay switches the active day. Unknown ids are ignored.
func (s *Store) SetActiveDay(dayID string) bool {
	if s.trip.DayIndex(dayID) < 0 {
		return false
	}
	s.activeDay = dayID
	return true
}

// CycleDay moves the active day by offset positions, wrapping around.
func (s *Store) CycleDay(offset int) {
	n := len(s.trip.Days)
	if n == 0 {
		return
	}
	i := ((s.ActiveDayIndex()+offset)%n + n) % n
	s.activeDay = s.trip.Days[i].ID
}

// Schedule derives the active day's schedule.
func (s *Store) Schedule() []scheduler.ScheduledStop {
	return s.ScheduleFor(s.activeDay)
}

// ScheduleFor derives the schedule of any day. Unknown ids yield an
// empty schedule.
func (s *Store) ScheduleFor(dayID string) []scheduler.ScheduledStop {
	day, _ := s.trip.DayByID(dayID)
	return scheduler.DeriveSchedule(day.Stops)
}

func (s *Store) MoveStop(index, direction int) {
	s.trip = MoveStop(s.trip, s.activeDay, index, direction)
}

func (s *Store) DeleteStop(stopID string) {
	s.trip = DeleteStop(s.trip, s.activeDay, stopID)
}

func (s *Store) AdjustDuration(stopID string, delta int) {
	s.trip = AdjustDuration(s.trip, s.activeDay, stopID, delta)
}

// UpsertStop inserts (empty stopID) or edits a stop of the active day and
// returns the affected stop id.
func (s *Store) UpsertStop(stopID string, fields StopFields) (string, error) {
	next, id, err := UpsertStop(s.trip, s.activeDay, stopID, fields, s.newID)
	if err != nil {
		return "", err
	}
	s.trip = next
	return id, nil
}

// ReplaceDayStops replaces the stops of dayID, which need not be active.
func (s *Store) ReplaceDayStops(dayID string, records []StopFields) error {
	next, err := ReplaceDayStops(s.trip, dayID, records, s.newID)
	if err != nil {
		return err
	}
	s.trip = next
	return nil
}

// AddDay appends a day and makes it active.
func (s *Store) AddDay() string {
	next, id := AddDay(s.trip, s.newID)
	s.trip = next
	s.activeDay = id
	return id
}

func (s *Store) UpdateDayMeta(label string, date time.Time) {
	s.trip = UpdateDayMeta(s.trip, s.activeDay, label, date)
}

// AppendRemark annotates a stop on any day.
func (s *Store) AppendRemark(dayID, stopID, marker, text string) {
	s.trip = AppendRemark(s.trip, dayID, stopID, marker, text)
}
