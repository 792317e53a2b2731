package scheduler

import "github.com/alexanderramin/waypoint/internal/domain"

// TravelBufferMin is the fixed gap inserted between consecutive stops.
const TravelBufferMin = 30

// ScheduledStop pairs a stop with its derived start time.
// DayOffset counts the midnights crossed before this stop's start; the
// clock wraps but the day does not. Rollover is DayOffset > 0.
type ScheduledStop struct {
	domain.Stop
	Start     domain.Clock
	DayOffset int
	Rollover  bool
}

// End returns the wall-clock end time, wrapped at midnight.
func (s ScheduledStop) End() domain.Clock {
	return s.Start.Add(s.DurationMin)
}

// EndsNextDay reports whether the stop runs past the midnight that
// follows its start.
func (s ScheduledStop) EndsNextDay() bool {
	return int(s.Start)+s.DurationMin > domain.MinutesPerDay
}

// DeriveSchedule computes each stop's start time from the first stop's
// authored start: start[0] = stops[0].StartTime and
// start[i] = start[i-1] + duration[i-1] + TravelBufferMin, modulo 24h.
// Authored start times of later stops are ignored. Input order and all
// non-time fields are preserved; the input slice is not modified.
func DeriveSchedule(stops []domain.Stop) []ScheduledStop {
	out := make([]ScheduledStop, 0, len(stops))
	if len(stops) == 0 {
		return out
	}

	// Minutes since the midnight preceding the first stop, unwrapped.
	abs := int(stops[0].StartTime)
	for i, stop := range stops {
		if i > 0 {
			abs += stops[i-1].DurationMin + TravelBufferMin
		}
		offset := abs / domain.MinutesPerDay
		out = append(out, ScheduledStop{
			Stop:      stop,
			Start:     domain.Clock(0).Add(abs),
			DayOffset: offset,
			Rollover:  offset > 0,
		})
	}
	return out
}
