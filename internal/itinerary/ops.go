// Package itinerary holds the trip mutation operations and the editing
// session that applies them.
//
// Every operation takes a Trip and returns a new Trip; the input is never
// modified. Lookups that miss (unknown day, unknown stop, index out of
// range) are not errors: the operation returns a copy of its input.
package itinerary

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/waypoint/internal/domain"
)

// TipMarker prefixes tip annotations appended to a stop's remarks.
const TipMarker = "✨ Tip: "

// MoveStop swaps the stop at index with its neighbour at index+direction.
// direction must be -1 or +1.
func MoveStop(trip domain.Trip, dayID string, index, direction int) domain.Trip {
	out := trip.Clone()
	di := out.DayIndex(dayID)
	if di < 0 || (direction != -1 && direction != 1) {
		return out
	}
	stops := out.Days[di].Stops
	target := index + direction
	if index < 0 || index >= len(stops) || target < 0 || target >= len(stops) {
		return out
	}
	stops[index], stops[target] = stops[target], stops[index]
	return out
}

// DeleteStop removes the stop with the given id from the day.
func DeleteStop(trip domain.Trip, dayID, stopID string) domain.Trip {
	out := trip.Clone()
	di := out.DayIndex(dayID)
	if di < 0 {
		return out
	}
	si := out.Days[di].StopIndex(stopID)
	if si < 0 {
		return out
	}
	stops := out.Days[di].Stops
	out.Days[di].Stops = append(stops[:si:si], stops[si+1:]...)
	return out
}

// AdjustDuration adds delta minutes to a stop's duration, never going
// below domain.MinDurationMin.
func AdjustDuration(trip domain.Trip, dayID, stopID string, delta int) domain.Trip {
	out := trip.Clone()
	s := findStop(&out, dayID, stopID)
	if s == nil {
		return out
	}
	s.DurationMin = domain.ClampDuration(s.DurationMin + delta)
	return out
}

// UpsertStop appends a new stop when stopID is empty, or merges fields into
// the matching stop otherwise. It returns the affected stop id, or "" when
// the day or stop was not found. Coercion failures return
// domain.ErrValidation together with an unchanged copy of trip.
func UpsertStop(trip domain.Trip, dayID, stopID string, fields StopFields, newID IDFunc) (domain.Trip, string, error) {
	out := trip.Clone()
	di := out.DayIndex(dayID)
	if di < 0 {
		return out, "", nil
	}

	if stopID == "" {
		s, err := newStop(idOrDefault(newID)(), fields)
		if err != nil {
			return trip.Clone(), "", err
		}
		out.Days[di].Stops = append(out.Days[di].Stops, s)
		return out, s.ID, nil
	}

	si := out.Days[di].StopIndex(stopID)
	if si < 0 {
		return out, "", nil
	}
	if err := applyFields(&out.Days[di].Stops[si], fields); err != nil {
		return trip.Clone(), "", err
	}
	return out, stopID, nil
}

// ReplaceDayStops replaces a day's stops wholesale. Every record gets a
// fresh id and the insert defaults; records are untrusted, so any invalid
// record rejects the whole replacement.
func ReplaceDayStops(trip domain.Trip, dayID string, records []StopFields, newID IDFunc) (domain.Trip, error) {
	out := trip.Clone()
	di := out.DayIndex(dayID)
	if di < 0 {
		return out, nil
	}

	gen := idOrDefault(newID)
	stops := make([]domain.Stop, 0, len(records))
	for i, rec := range records {
		s, err := newStop(gen(), rec)
		if err != nil {
			return trip.Clone(), fmt.Errorf("record %d: %w", i+1, err)
		}
		stops = append(stops, s)
	}
	out.Days[di].Stops = stops
	return out, nil
}

// AddDay appends an empty day dated one calendar day after the last day
// (or on the trip start date when there are none) and returns its id.
func AddDay(trip domain.Trip, newID IDFunc) (domain.Trip, string) {
	out := trip.Clone()
	date := out.StartDate
	if n := len(out.Days); n > 0 {
		date = out.Days[n-1].Date.AddDate(0, 0, 1)
	}
	day := domain.Day{
		ID:    idOrDefault(newID)(),
		Date:  date,
		Label: fmt.Sprintf("Day %d", len(out.Days)+1),
	}
	out.Days = append(out.Days, day)
	return out, day.ID
}

// UpdateDayMeta sets a day's label and date. Stops are untouched.
func UpdateDayMeta(trip domain.Trip, dayID, label string, date time.Time) domain.Trip {
	out := trip.Clone()
	di := out.DayIndex(dayID)
	if di < 0 {
		return out
	}
	out.Days[di].Label = label
	out.Days[di].Date = date
	return out
}

// AppendRemark appends marker+text to a stop's remarks on a new line.
// Blank text leaves the trip unchanged.
func AppendRemark(trip domain.Trip, dayID, stopID, marker, text string) domain.Trip {
	out := trip.Clone()
	text = strings.TrimSpace(text)
	if text == "" {
		return out
	}
	s := findStop(&out, dayID, stopID)
	if s == nil {
		return out
	}
	if s.Remarks != "" {
		s.Remarks += "\n"
	}
	s.Remarks += marker + text
	return out
}

func findStop(trip *domain.Trip, dayID, stopID string) *domain.Stop {
	di := trip.DayIndex(dayID)
	if di < 0 {
		return nil
	}
	si := trip.Days[di].StopIndex(stopID)
	if si < 0 {
		return nil
	}
	return &trip.Days[di].Stops[si]
}
