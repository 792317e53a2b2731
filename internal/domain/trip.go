package domain

import "time"

// DateLayout is the calendar-date format used for days and trip start dates.
const DateLayout = "2006-01-02"

type Trip struct {
	ID        string
	Title     string
	StartDate time.Time
	Days      []Day
}

type Day struct {
	ID    string
	Date  time.Time
	Label string
	Stops []Stop
}

// Stop is one itinerary item. StartTime is authored data and only
// meaningful for the first stop of a day; every other start is derived.
type Stop struct {
	ID           string
	Name         string
	Category     Category
	StartTime    Clock
	DurationMin  int
	TicketInfo   string
	Remarks      string
	Expenses     string
	ExternalLink string
}

// Clone returns a deep copy so callers can derive a new trip without
// aliasing the day or stop slices of the original. Nil slices stay nil.
func (t Trip) Clone() Trip {
	out := t
	if t.Days == nil {
		return out
	}
	out.Days = make([]Day, len(t.Days))
	for i, d := range t.Days {
		out.Days[i] = d
		if d.Stops != nil {
			out.Days[i].Stops = append(make([]Stop, 0, len(d.Stops)), d.Stops...)
		}
	}
	return out
}

// DayIndex returns the position of the day with the given id, or -1.
func (t Trip) DayIndex(dayID string) int {
	for i := range t.Days {
		if t.Days[i].ID == dayID {
			return i
		}
	}
	return -1
}

// DayByID returns the day with the given id.
func (t Trip) DayByID(dayID string) (Day, bool) {
	i := t.DayIndex(dayID)
	if i < 0 {
		return Day{}, false
	}
	return t.Days[i], true
}

// StopIndex returns the position of the stop with the given id, or -1.
func (d Day) StopIndex(stopID string) int {
	for i := range d.Stops {
		if d.Stops[i].ID == stopID {
			return i
		}
	}
	return -1
}
